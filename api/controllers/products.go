package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/money"
)

type productResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int    `json:"price_cents"`
	PriceDisplay string `json:"price"`
	ImagePath    string `json:"image_path,omitempty"`
}

// ListProducts returns the storefront catalog.
func ListProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := cat.List()
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, productResponse{
				ID:           p.ID,
				Name:         p.Name,
				PriceCents:   p.PriceCents,
				PriceDisplay: money.FormatCents(p.PriceCents),
				ImagePath:    p.ImagePath,
			})
		}
		responses.WriteSuccess(w, out)
	}
}
