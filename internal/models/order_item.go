package models

import "time"

// OrderItem is a line on an order. UnitPrice snapshots the catalog price at
// submission time. Weight is a customer note and never affects pricing.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	CakeID    uint      `gorm:"index;not null" json:"cake_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice Money     `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Flavor    string    `gorm:"size:128" json:"flavor"`
	Weight    *float64  `json:"weight"`
	CreatedAt time.Time `json:"created_at"`

	Cake *Cake `gorm:"foreignKey:CakeID" json:"cake,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
