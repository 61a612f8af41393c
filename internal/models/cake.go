package models

import "time"

// Cake is a catalog item. Slug is the URL identity, derived from the
// Ukrainian name via transliteration. Legacy rows carry an empty slug until
// the backfill migration runs, so uniqueness is enforced by a partial index
// that ignores empty values.
type Cake struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:255;not null;index" json:"name"`
	Slug        string   `gorm:"size:300;index:idx_cakes_slug,unique,where:slug <> ''" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	Price       Money    `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL    string   `gorm:"size:1024" json:"image_url"`
	CategoryID  *uint    `gorm:"index" json:"category_id"`
	IsAvailable bool     `gorm:"default:true" json:"is_available"`
	Weight      *float64 `json:"weight"`
	Ingredients string   `gorm:"type:text" json:"ingredients"`
	ShelfLife   string   `gorm:"size:128" json:"shelf_life"`
	// SEO title/description serialized as JSON.
	SeoMeta   string    `gorm:"type:text" json:"seo_meta,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Cake) TableName() string {
	return "cakes"
}
