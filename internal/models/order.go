package models

import "time"

// Order is a customer order. UserID is nil for guest checkout. TotalPrice is
// computed server-side from catalog prices at submission time.
type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         *uint     `gorm:"index" json:"user_id"`
	CustomerName   string    `gorm:"size:128;not null" json:"customer_name"`
	CustomerPhone  string    `gorm:"size:32;not null" json:"customer_phone"`
	DeliveryMethod string    `gorm:"size:32" json:"delivery_method"`
	DeliveryDate   string    `gorm:"size:32" json:"delivery_date"`
	Address        string    `gorm:"size:512" json:"address"`
	Comment        string    `gorm:"type:text" json:"comment"`
	TotalPrice     Money     `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Status         string    `gorm:"size:32;not null;index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
