package stripewebhook

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/internal/orders"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/stripe/stripe-go/v84"
	"gorm.io/gorm"
)

type cartClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ServiceParams struct {
	OrderRepo         orders.OrderRepository
	Carts             cartClearer
	TransactionRunner txRunner
	Logger            *logger.Logger
}

// Service finalizes orders from Stripe payment notifications.
type Service struct {
	orderRepo orders.OrderRepository
	carts     cartClearer
	txRunner  txRunner
	logg      *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.OrderRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order repo required")
	}
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart clearer required")
	}
	if params.TransactionRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &Service{
		orderRepo: params.OrderRepo,
		carts:     params.Carts,
		txRunner:  params.TransactionRunner,
		logg:      params.Logger,
	}, nil
}

// HandleEvent processes one verified Stripe event. Event types other than
// payment_intent.succeeded are acknowledged without action.
func (s *Service) HandleEvent(ctx context.Context, event *stripe.Event) error {
	if event == nil || event.Data == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "stripe event data required")
	}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			// A payload that does not decode will not decode on redelivery
			// either; reject it as a client error.
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode payment intent event")
		}
		return s.finalizeOrder(ctx, &intent)
	default:
		return nil
	}
}

// Metadata keys whose values must be present for an order row to be built.
var requiredMetadata = []string{
	checkout.MetaCustomerFirstName,
	checkout.MetaCustomerLastName,
	checkout.MetaShippingAddress,
	checkout.MetaShippingCity,
	checkout.MetaShippingState,
	checkout.MetaShippingZip,
}

func (s *Service) finalizeOrder(ctx context.Context, intent *stripe.PaymentIntent) error {
	if intent.ID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment intent id missing")
	}
	ctx = s.logg.WithField(ctx, "payment_intent_id", intent.ID)

	meta := intent.Metadata
	var missing []string
	for _, key := range requiredMetadata {
		if meta[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeIncompleteOrder, "payment intent metadata is missing order fields").
			WithDetails(map[string]interface{}{"missing": missing})
	}

	record := &models.Order{
		PaymentIntentID:   intent.ID,
		CustomerEmail:     optional(meta[checkout.MetaCustomerEmail]),
		CustomerFirstName: meta[checkout.MetaCustomerFirstName],
		CustomerLastName:  meta[checkout.MetaCustomerLastName],
		ShippingAddress:   meta[checkout.MetaShippingAddress],
		ShippingApartment: optional(meta[checkout.MetaShippingApartment]),
		ShippingCity:      meta[checkout.MetaShippingCity],
		ShippingState:     meta[checkout.MetaShippingState],
		ShippingZip:       meta[checkout.MetaShippingZip],
		ShippingPhone:     optional(meta[checkout.MetaShippingPhone]),
		Items:             s.decodeItems(ctx, meta[checkout.MetaItems]),
		SubtotalCents:     metaInt(meta, checkout.MetaSubtotalCents),
		ShippingCostCents: metaInt(meta, checkout.MetaShippingCostCents),
		ShippingZone:      meta[checkout.MetaShippingZone],
		// The charged amount is authoritative; totals are never recomputed here.
		TotalCents: int(intent.Amount),
	}

	err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.orderRepo.WithTx(tx).Create(ctx, record)
		return err
	})
	if err != nil {
		if db.IsUniqueViolation(err, "orders_payment_intent_id_key") {
			s.logg.Info(ctx, "payment already finalized, acknowledging replay")
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	s.clearCart(ctx, meta[checkout.MetaSessionID])
	return nil
}

func (s *Service) decodeItems(ctx context.Context, raw string) types.OrderItems {
	if raw == "" {
		return types.OrderItems{}
	}
	var items types.OrderItems
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logg.Warn(ctx, "items metadata is not valid JSON, storing order without line items")
		return types.OrderItems{}
	}
	return items
}

// clearCart is best effort: the order is already committed, and an orphaned
// cart row only lingers until its session expires.
func (s *Service) clearCart(ctx context.Context, sessionID string) {
	if sessionID == "" {
		s.logg.Warn(ctx, "payment intent metadata has no session id, skipping cart clear")
		return
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.Error(ctx, "failed to clear cart after order finalization", err)
	}
}

func metaInt(meta map[string]string, key string) int {
	value, err := strconv.Atoi(meta[key])
	if err != nil {
		return 0
	}
	return value
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
