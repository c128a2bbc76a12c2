package checkout

// Metadata keys stamped onto every payment intent. The payment notification
// handler reads the same keys back, so the intent carries everything needed
// to build the order without a server-side staging table.
const (
	MetaSessionID           = "session_id"
	MetaSubtotalCents       = "subtotal_cents"
	MetaShippingCostCents   = "shipping_cost_cents"
	MetaTotalCents          = "total_cents"
	MetaShippingZone        = "shipping_zone"
	MetaShippingDescription = "shipping_description"
	MetaCustomerEmail       = "customer_email"
	MetaCustomerFirstName   = "customer_first_name"
	MetaCustomerLastName    = "customer_last_name"
	MetaShippingAddress     = "shipping_address"
	MetaShippingApartment   = "shipping_apartment"
	MetaShippingCity        = "shipping_city"
	MetaShippingState       = "shipping_state"
	MetaShippingZip         = "shipping_zip"
	MetaShippingPhone       = "shipping_phone"
	MetaItems               = "items"
	MetaItemCount           = "item_count"
)
