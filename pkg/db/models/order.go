package models

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// Order is created exactly once per successful payment notification, keyed
// by the payment intent's external identifier. TotalCents mirrors the amount
// actually charged; it is never recomputed from the items.
type Order struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	PaymentIntentID   string           `gorm:"column:payment_intent_id;not null;uniqueIndex:orders_payment_intent_id_key"`
	CustomerEmail     *string          `gorm:"column:customer_email"`
	CustomerFirstName string           `gorm:"column:customer_first_name;not null"`
	CustomerLastName  string           `gorm:"column:customer_last_name;not null"`
	ShippingAddress   string           `gorm:"column:shipping_address;not null"`
	ShippingApartment *string          `gorm:"column:shipping_apartment"`
	ShippingCity      string           `gorm:"column:shipping_city;not null"`
	ShippingState     string           `gorm:"column:shipping_state;not null"`
	ShippingZip       string           `gorm:"column:shipping_zip;not null"`
	ShippingPhone     *string          `gorm:"column:shipping_phone"`
	Items             types.OrderItems `gorm:"column:items;type:jsonb;serializer:json"`
	SubtotalCents     int              `gorm:"column:subtotal_cents;not null"`
	ShippingCostCents int              `gorm:"column:shipping_cost_cents;not null"`
	ShippingZone      string           `gorm:"column:shipping_zone"`
	TotalCents        int              `gorm:"column:total_cents;not null"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table used by the orders repository.
func (Order) TableName() string {
	return "orders"
}
