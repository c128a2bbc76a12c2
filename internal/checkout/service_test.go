package checkout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/stripe/stripe-go/v84"
)

func TestCreatePaymentIntentPricesServerSide(t *testing.T) {
	t.Parallel()

	carts := stubCartReader{
		"sess-1": {
			{SessionID: "sess-1", ProductID: "tee", Quantity: 2},
			{SessionID: "sess-1", ProductID: "sticker", Quantity: 1},
		},
	}
	stripeStub := &stubStripeClient{intent: &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}}
	svc := newTestService(t, carts, stripeStub)

	// 2 x 1000 + 1 x 500 subtotal, 10oz to CA quotes 500 shipping.
	res, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Doe",
		Address:   "1 Main St",
		City:      "Oakland",
		State:     "CA",
		Zip:       "94601",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SubtotalCents != 2500 {
		t.Fatalf("subtotal = %d, want 2500", res.SubtotalCents)
	}
	if res.ShippingCostCents != 500 {
		t.Fatalf("shipping = %d, want 500", res.ShippingCostCents)
	}
	if res.AmountCents != 3000 {
		t.Fatalf("amount = %d, want 3000", res.AmountCents)
	}
	if res.ClientSecret != "pi_123_secret" || res.PaymentIntentID != "pi_123" {
		t.Fatalf("unexpected result: %+v", res)
	}

	params := stripeStub.lastParams
	if params == nil {
		t.Fatal("expected stripe call")
	}
	if got := *params.Amount; got != 3000 {
		t.Fatalf("charged amount = %d, want 3000", got)
	}
	if got := *params.Currency; got != "usd" {
		t.Fatalf("currency = %q, want usd", got)
	}
}

func TestCreatePaymentIntentMetadataCarriesOrderSnapshot(t *testing.T) {
	t.Parallel()

	carts := stubCartReader{
		"sess-1": {{SessionID: "sess-1", ProductID: "tee", Quantity: 2}},
	}
	stripeStub := &stubStripeClient{intent: &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "cs"}}
	svc := newTestService(t, carts, stripeStub)

	_, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Doe",
		Address:   "1 Main St",
		Apartment: "4B",
		City:      "Reno",
		State:     "NV",
		Zip:       "89501",
		Phone:     "555-0100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := stripeStub.lastParams.Metadata
	want := map[string]string{
		MetaSessionID:         "sess-1",
		MetaSubtotalCents:     "2000",
		MetaShippingCostCents: "500",
		MetaTotalCents:        "2500",
		MetaShippingZone:      "Local",
		MetaCustomerEmail:     "jo@example.com",
		MetaCustomerFirstName: "Jo",
		MetaCustomerLastName:  "Doe",
		MetaShippingAddress:   "1 Main St",
		MetaShippingApartment: "4B",
		MetaShippingCity:      "Reno",
		MetaShippingState:     "NV",
		MetaShippingZip:       "89501",
		MetaShippingPhone:     "555-0100",
		MetaItemCount:         "2",
	}
	for key, val := range want {
		if meta[key] != val {
			t.Fatalf("metadata[%s] = %q, want %q", key, meta[key], val)
		}
	}

	var items types.OrderItems
	if err := json.Unmarshal([]byte(meta[MetaItems]), &items); err != nil {
		t.Fatalf("items metadata must be valid JSON: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "tee" || items[0].UnitPriceCents != 1000 || items[0].Quantity != 2 {
		t.Fatalf("unexpected items snapshot: %+v", items)
	}
}

func TestCreatePaymentIntentEmptyCart(t *testing.T) {
	t.Parallel()

	stripeStub := &stubStripeClient{}
	svc := newTestService(t, stubCartReader{}, stripeStub)

	_, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{State: "CA"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeEmptyCart {
		t.Fatalf("unexpected error: %v", err)
	}
	if stripeStub.calls != 0 {
		t.Fatal("stripe must not be called for an empty cart")
	}
}

func TestCreatePaymentIntentRequiresSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, stubCartReader{}, &stubStripeClient{})

	_, err := svc.CreatePaymentIntent(context.Background(), "", CheckoutInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNoSession {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePaymentIntentUnavailableProduct(t *testing.T) {
	t.Parallel()

	carts := stubCartReader{
		"sess-1": {{SessionID: "sess-1", ProductID: "retired-sku", Quantity: 1}},
	}
	stripeStub := &stubStripeClient{}
	svc := newTestService(t, carts, stripeStub)

	_, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{State: "CA"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeProductGone {
		t.Fatalf("unexpected error: %v", err)
	}
	if stripeStub.calls != 0 {
		t.Fatal("stripe must not be called when a product is unavailable")
	}
}

func TestCreatePaymentIntentStaleClientTotal(t *testing.T) {
	t.Parallel()

	carts := stubCartReader{
		"sess-1": {{SessionID: "sess-1", ProductID: "tee", Quantity: 1}},
	}
	stripeStub := &stubStripeClient{}
	svc := newTestService(t, carts, stripeStub)

	_, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{
		State:              "CA",
		ExpectedTotalCents: 999,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidTotal {
		t.Fatalf("unexpected error: %v", err)
	}
	if stripeStub.calls != 0 {
		t.Fatal("stripe must not be called on a total mismatch")
	}
}

func TestCreatePaymentIntentUnknownStateShipsFree(t *testing.T) {
	t.Parallel()

	carts := stubCartReader{
		"sess-1": {{SessionID: "sess-1", ProductID: "tee", Quantity: 1}},
	}
	stripeStub := &stubStripeClient{intent: &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "cs"}}
	svc := newTestService(t, carts, stripeStub)

	res, err := svc.CreatePaymentIntent(context.Background(), "sess-1", CheckoutInput{State: "ZZ"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ShippingCostCents != 0 || res.ShippingZone != "" {
		t.Fatalf("expected zero shipping for unknown destination, got %+v", res)
	}
	if res.AmountCents != 1000 {
		t.Fatalf("amount = %d, want 1000", res.AmountCents)
	}
}

func newTestService(t *testing.T, carts stubCartReader, client *stubStripeClient) Service {
	t.Helper()

	cat := catalog.New([]catalog.Product{
		{ID: "tee", Name: "Tee", PriceCents: 1000, WeightOz: 4},
		{ID: "sticker", Name: "Sticker", PriceCents: 500, WeightOz: 2},
	})
	svc, err := NewService(carts, cat, client, "usd")
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

type stubCartReader map[string][]models.CartItem

func (s stubCartReader) ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return s[sessionID], nil
}

type stubStripeClient struct {
	intent     *stripe.PaymentIntent
	err        error
	calls      int
	lastParams *stripe.PaymentIntentParams
}

func (s *stubStripeClient) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	s.calls++
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.intent, nil
}
