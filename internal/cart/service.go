package cart

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLookup interface {
	Lookup(id string) (catalog.Product, bool)
}

// Service exposes session cart operations.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*View, error)
	ApplyDelta(ctx context.Context, sessionID, productID string, delta int) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo     CartRepository
	tx       txRunner
	products productLookup
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo CartRepository, tx txRunner, products productLookup) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &service{repo: repo, tx: tx, products: products}, nil
}

// Line is one cart row joined against the product table.
type Line struct {
	ProductID      string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int    `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int    `json:"line_total_cents"`
	ImagePath      string `json:"image_path,omitempty"`
}

// View is the priced cart snapshot returned to callers.
type View struct {
	Lines         []Line `json:"items"`
	SubtotalCents int    `json:"subtotal_cents"`
	ItemCount     int    `json:"item_count"`
}

// GetCart returns the priced cart for a session. Rows referencing products
// no longer in the catalog are dropped from the view.
func (s *service) GetCart(ctx context.Context, sessionID string) (*View, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNoSession, "session is required")
	}

	rows, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	view := &View{Lines: []Line{}}
	for _, row := range rows {
		product, ok := s.products.Lookup(row.ProductID)
		if !ok {
			continue
		}
		line := Line{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			Quantity:       row.Quantity,
			LineTotalCents: product.PriceCents * row.Quantity,
			ImagePath:      product.ImagePath,
		}
		view.Lines = append(view.Lines, line)
		view.SubtotalCents += line.LineTotalCents
		view.ItemCount += line.Quantity
	}
	return view, nil
}

// ApplyDelta adjusts one product's quantity and returns the refreshed cart.
func (s *service) ApplyDelta(ctx context.Context, sessionID, productID string, delta int) (*View, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNoSession, "session is required")
	}
	if delta == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity delta must be non-zero")
	}
	if !s.productExists(productID) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product")
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).ApplyDelta(ctx, sessionID, productID, delta)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart")
	}

	return s.GetCart(ctx, sessionID)
}

// Clear removes every row for the session.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeNoSession, "session is required")
	}
	if err := s.repo.DeleteBySession(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) productExists(productID string) bool {
	if productID == "" {
		return false
	}
	_, ok := s.products.Lookup(productID)
	return ok
}
