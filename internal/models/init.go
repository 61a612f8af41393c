package models

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/logger"
)

const (
	defaultAdminEmail    = "admin@solodko.local"
	defaultAdminPassword = "admin123"
)

// InitDefaultAdmin seeds an admin account when none exists. Credentials come
// from ADMIN_EMAIL / ADMIN_PASSWORD, falling back to development defaults.
func InitDefaultAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password failed: %w", err)
	}

	admin := User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin failed: %w", err)
	}

	logger.Infow("default admin created", "email", email)
	return nil
}
