package models

import "time"

// CartItem is one product line in a session-scoped cart. At most one row
// exists per (session_id, product_id); quantity is always positive because
// rows at or below zero are deleted instead of stored.
type CartItem struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	ProductID string    `gorm:"column:product_id;primaryKey"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used by the cart repository.
func (CartItem) TableName() string {
	return "cart_items"
}
