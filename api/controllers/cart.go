package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/session"
)

type addToCartRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	QuantityDelta int    `json:"quantityDelta" validate:"required"`
}

// GetCart returns the priced cart for the caller's session, minting a
// session cookie on first contact.
func GetCart(svc cartsvc.Service, sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := ensureSession(w, r, sessions)
		ctx := sessionContext(r, logg, sessionID)

		view, err := svc.GetCart(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AddToCart applies a signed quantity delta for one product and returns the
// refreshed cart.
func AddToCart(svc cartsvc.Service, sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := ensureSession(w, r, sessions)
		ctx := sessionContext(r, logg, sessionID)

		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.ApplyDelta(ctx, sessionID, payload.ProductID, payload.QuantityDelta)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// ensureSession resolves the session cookie, minting and setting one when
// the request carries none.
func ensureSession(w http.ResponseWriter, r *http.Request, sessions *session.Manager) string {
	if id, ok := sessions.FromRequest(r); ok {
		return id
	}
	id := sessions.Mint()
	sessions.SetCookie(w, id)
	return id
}

func sessionContext(r *http.Request, logg *logger.Logger, sessionID string) context.Context {
	ctx := r.Context()
	if logg != nil {
		ctx = logg.WithSessionID(ctx, sessionID)
	}
	return ctx
}
