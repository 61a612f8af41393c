package models

import "time"

// Category groups cakes on the storefront.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Slug        string    `gorm:"size:160;uniqueIndex" json:"slug"`
	ImageURL    string    `gorm:"size:1024" json:"image_url"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Cakes []Cake `gorm:"foreignKey:CategoryID" json:"cakes,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
