package types

// OrderItem is a denormalized snapshot of one purchased line, carried in
// payment intent metadata and persisted on the order row. Prices are minor
// currency units captured at checkout time, not live catalog references.
type OrderItem struct {
	ProductID      string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int    `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// OrderItems is stored as a jsonb column on orders.
type OrderItems []OrderItem
