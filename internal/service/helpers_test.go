package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/solodko/solodko-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedCake(t *testing.T, db *gorm.DB, name, slug string, price float64) models.Cake {
	t.Helper()
	cake := models.Cake{
		Name:        name,
		Slug:        slug,
		Price:       models.NewMoneyFromFloat(price),
		IsAvailable: true,
	}
	if err := db.Create(&cake).Error; err != nil {
		t.Fatalf("seed cake %q: %v", name, err)
	}
	return cake
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

type recordingNotifier struct {
	calls []uint
	err   error
}

func (n *recordingNotifier) OrderCreated(_ context.Context, orderID uint) error {
	n.calls = append(n.calls, orderID)
	return n.err
}
