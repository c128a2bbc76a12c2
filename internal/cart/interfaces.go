package cart

import (
	"context"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
	ApplyDelta(ctx context.Context, sessionID, productID string, delta int) error
	DeleteBySession(ctx context.Context, sessionID string) error
}
