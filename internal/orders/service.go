package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

type productLookup interface {
	Lookup(id string) (catalog.Product, bool)
}

// Service exposes read access to finalized orders.
type Service interface {
	GetByPaymentID(ctx context.Context, paymentIntentID string) (*OrderDTO, error)
}

type service struct {
	repo     OrderRepository
	products productLookup
}

// NewService builds an order service backed by the provided stack.
func NewService(repo OrderRepository, products productLookup) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &service{repo: repo, products: products}, nil
}

// GetByPaymentID returns the order finalized for the given payment intent.
func (s *service) GetByPaymentID(ctx context.Context, paymentIntentID string) (*OrderDTO, error) {
	if paymentIntentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment id is required")
	}

	record, err := s.repo.FindByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return buildOrderDTO(record, s.products), nil
}
