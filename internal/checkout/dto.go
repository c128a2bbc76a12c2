package checkout

// CheckoutInput carries the customer and destination details collected at
// checkout. Prices are never part of the input; the server owns all amounts.
type CheckoutInput struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	Apartment string
	City      string
	State     string
	Zip       string
	Phone     string

	// ExpectedTotalCents is the total the client rendered, used purely as a
	// tripwire for stale carts. Zero means the client sent no expectation.
	ExpectedTotalCents int
}

// PaymentIntentResult is returned to the client so it can confirm the payment.
type PaymentIntentResult struct {
	ClientSecret      string `json:"client_secret"`
	PaymentIntentID   string `json:"payment_intent_id"`
	AmountCents       int    `json:"amount_cents"`
	SubtotalCents     int    `json:"subtotal_cents"`
	ShippingCostCents int    `json:"shipping_cost_cents"`
	ShippingZone      string `json:"shipping_zone,omitempty"`
}
