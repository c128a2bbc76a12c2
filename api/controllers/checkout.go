package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	checkoutsvc "github.com/angelmondragon/storefront-backend/internal/checkout"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/session"
)

type createPaymentIntentRequest struct {
	Email              string `json:"email" validate:"omitempty,email"`
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	Apartment          string `json:"apartment" validate:"omitempty"`
	City               string `json:"city" validate:"required"`
	State              string `json:"state" validate:"required,len=2"`
	Zip                string `json:"zip" validate:"required"`
	Phone              string `json:"phone" validate:"omitempty"`
	ExpectedTotalCents int    `json:"expected_total_cents" validate:"omitempty,min=1"`
}

// CreatePaymentIntent prices the session cart and opens a Stripe payment.
// Checkout never mints a session: no cookie means no cart to pay for.
func CreatePaymentIntent(svc checkoutsvc.Service, sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, ok := sessions.FromRequest(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNoSession, "checkout requires an existing session"))
			return
		}
		ctx := sessionContext(r, logg, sessionID)

		var payload createPaymentIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.CreatePaymentIntent(ctx, sessionID, checkoutsvc.CheckoutInput{
			Email:              payload.Email,
			FirstName:          payload.FirstName,
			LastName:           payload.LastName,
			Address:            payload.Address,
			Apartment:          payload.Apartment,
			City:               payload.City,
			State:              payload.State,
			Zip:                payload.Zip,
			Phone:              payload.Phone,
			ExpectedTotalCents: payload.ExpectedTotalCents,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
