package orders

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/money"
	"github.com/google/uuid"
)

// ItemDTO is one line of a finalized order, enriched with catalog imagery
// when the product still exists.
type ItemDTO struct {
	ProductID        string `json:"id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	UnitPriceCents   int    `json:"unit_price_cents"`
	UnitPriceDisplay string `json:"unit_price"`
	LineTotalCents   int    `json:"line_total_cents"`
	ImagePath        string `json:"image_path,omitempty"`
}

// OrderDTO is the confirmation-page view of an order.
type OrderDTO struct {
	ID                  uuid.UUID `json:"id"`
	PaymentIntentID     string    `json:"payment_intent_id"`
	CustomerEmail       string    `json:"customer_email,omitempty"`
	CustomerFirstName   string    `json:"customer_first_name"`
	CustomerLastName    string    `json:"customer_last_name"`
	ShippingAddress     string    `json:"shipping_address"`
	ShippingApartment   string    `json:"shipping_apartment,omitempty"`
	ShippingCity        string    `json:"shipping_city"`
	ShippingState       string    `json:"shipping_state"`
	ShippingZip         string    `json:"shipping_zip"`
	ShippingPhone       string    `json:"shipping_phone,omitempty"`
	Items               []ItemDTO `json:"items"`
	SubtotalCents       int       `json:"subtotal_cents"`
	SubtotalDisplay     string    `json:"subtotal"`
	ShippingCostCents   int       `json:"shipping_cost_cents"`
	ShippingCostDisplay string    `json:"shipping_cost"`
	ShippingZone        string    `json:"shipping_zone,omitempty"`
	TotalCents          int       `json:"total_cents"`
	TotalDisplay        string    `json:"total"`
	CreatedAt           time.Time `json:"created_at"`
}

func buildOrderDTO(record *models.Order, lookup productLookup) *OrderDTO {
	dto := &OrderDTO{
		ID:                  record.ID,
		PaymentIntentID:     record.PaymentIntentID,
		CustomerFirstName:   record.CustomerFirstName,
		CustomerLastName:    record.CustomerLastName,
		ShippingAddress:     record.ShippingAddress,
		ShippingCity:        record.ShippingCity,
		ShippingState:       record.ShippingState,
		ShippingZip:         record.ShippingZip,
		Items:               make([]ItemDTO, 0, len(record.Items)),
		SubtotalCents:       record.SubtotalCents,
		SubtotalDisplay:     money.FormatCents(record.SubtotalCents),
		ShippingCostCents:   record.ShippingCostCents,
		ShippingCostDisplay: money.FormatCents(record.ShippingCostCents),
		ShippingZone:        record.ShippingZone,
		TotalCents:          record.TotalCents,
		TotalDisplay:        money.FormatCents(record.TotalCents),
		CreatedAt:           record.CreatedAt,
	}
	if record.CustomerEmail != nil {
		dto.CustomerEmail = *record.CustomerEmail
	}
	if record.ShippingApartment != nil {
		dto.ShippingApartment = *record.ShippingApartment
	}
	if record.ShippingPhone != nil {
		dto.ShippingPhone = *record.ShippingPhone
	}

	for _, item := range record.Items {
		line := ItemDTO{
			ProductID:        item.ProductID,
			Name:             item.Name,
			Quantity:         item.Quantity,
			UnitPriceCents:   item.UnitPriceCents,
			UnitPriceDisplay: money.FormatCents(item.UnitPriceCents),
			LineTotalCents:   item.UnitPriceCents * item.Quantity,
		}
		if product, ok := lookup.Lookup(item.ProductID); ok {
			line.ImagePath = product.ImagePath
		}
		dto.Items = append(dto.Items, line)
	}
	return dto
}
