package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/shipping"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/stripe/stripe-go/v84"
)

type cartReader interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
}

type productLookup interface {
	Lookup(id string) (catalog.Product, bool)
}

// Service turns a session cart into a Stripe payment intent.
type Service interface {
	CreatePaymentIntent(ctx context.Context, sessionID string, input CheckoutInput) (*PaymentIntentResult, error)
}

type service struct {
	carts    cartReader
	products productLookup
	stripe   StripePaymentClient
	currency string
}

// NewService builds a checkout service backed by the provided stack.
func NewService(carts cartReader, products productLookup, stripeClient StripePaymentClient, currency string) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart reader required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	if stripeClient == nil {
		return nil, fmt.Errorf("stripe client required")
	}
	if currency == "" {
		currency = "usd"
	}
	return &service{carts: carts, products: products, stripe: stripeClient, currency: currency}, nil
}

// CreatePaymentIntent prices the session cart server-side, quotes shipping
// for the destination, and creates a payment intent carrying the full order
// snapshot in its metadata.
func (s *service) CreatePaymentIntent(ctx context.Context, sessionID string, input CheckoutInput) (*PaymentIntentResult, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNoSession, "checkout requires an existing session")
	}

	rows, err := s.carts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	var (
		subtotalCents int
		weightOz      int
		itemCount     int
		items         types.OrderItems
	)
	for _, row := range rows {
		product, ok := s.products.Lookup(row.ProductID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeProductGone, "a cart item is no longer available").
				WithDetails(map[string]interface{}{"product_id": row.ProductID})
		}
		subtotalCents += product.PriceCents * row.Quantity
		weightOz += product.WeightOz * row.Quantity
		itemCount += row.Quantity
		items = append(items, types.OrderItem{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			Quantity:       row.Quantity,
		})
	}

	quote := shipping.Estimate(weightOz, input.State)
	totalCents := subtotalCents + quote.CostCents
	if totalCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidTotal, "order total must be positive")
	}
	if input.ExpectedTotalCents != 0 && input.ExpectedTotalCents != totalCents {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidTotal, "cart total changed, refresh and try again").
			WithDetails(map[string]interface{}{"total_cents": totalCents})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order items")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(totalCents)),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			MetaSessionID:           sessionID,
			MetaSubtotalCents:       strconv.Itoa(subtotalCents),
			MetaShippingCostCents:   strconv.Itoa(quote.CostCents),
			MetaTotalCents:          strconv.Itoa(totalCents),
			MetaShippingZone:        quote.Zone,
			MetaShippingDescription: quote.Description,
			MetaCustomerEmail:       input.Email,
			MetaCustomerFirstName:   input.FirstName,
			MetaCustomerLastName:    input.LastName,
			MetaShippingAddress:     input.Address,
			MetaShippingApartment:   input.Apartment,
			MetaShippingCity:        input.City,
			MetaShippingState:       input.State,
			MetaShippingZip:         input.Zip,
			MetaShippingPhone:       input.Phone,
			MetaItems:               string(itemsJSON),
			MetaItemCount:           strconv.Itoa(itemCount),
		},
	}
	if input.Email != "" {
		params.ReceiptEmail = stripe.String(input.Email)
	}

	intent, err := s.stripe.CreatePaymentIntent(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment intent")
	}

	return &PaymentIntentResult{
		ClientSecret:      intent.ClientSecret,
		PaymentIntentID:   intent.ID,
		AmountCents:       totalCents,
		SubtotalCents:     subtotalCents,
		ShippingCostCents: quote.CostCents,
		ShippingZone:      quote.Zone,
	}, nil
}
