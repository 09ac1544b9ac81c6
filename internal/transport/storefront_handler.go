package transport

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StorefrontHandler handles HTTP requests for the landing page
type StorefrontHandler struct {
	logger *zap.Logger
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(logger *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{logger: logger}
}

// RegisterRoutes registers all storefront routes
func (h *StorefrontHandler) RegisterRoutes(r chi.Router) {
	r.Route("/storefront", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/featured", h.ListFeatured)
		r.Post("/products/{productID}/toggle-featured", h.ToggleFeatured)
		r.Get("/categories", h.ListCategories)
	})
}

// ListProducts returns every product card
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []domain.FeaturedProduct
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		products = p.Storefront.Products()
	})
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]FeaturedProductResponse{"products": toFeaturedResponses(products)})
}

// ListFeatured returns only the cards flagged as featured
func (h *StorefrontHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	var products []domain.FeaturedProduct
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		products = p.Storefront.Featured()
	})
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]FeaturedProductResponse{"products": toFeaturedResponses(products)})
}

// ToggleFeatured flips the featured flag of a card. An unknown id changes
// nothing and answers 204.
func (h *StorefrontHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var (
		toggled domain.FeaturedProduct
		found   bool
	)
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		toggled, found = p.Storefront.ToggleFeatured(id)
	})
	if !found {
		h.logger.Debug("Toggle on unknown product", zap.Int("product_id", id))
		middleware.RespondNoContent(w)
		return
	}

	middleware.CatalogMutations.WithLabelValues("storefront", "toggle").Inc()
	h.logger.Info("Featured flag toggled", zap.Int("product_id", id), zap.Bool("featured", toggled.IsFeatured))
	middleware.RespondWithJSON(w, http.StatusOK, toFeaturedResponses([]domain.FeaturedProduct{toggled})[0])
}

// ListCategories returns the landing page category tiles
func (h *StorefrontHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{"categories": domain.FeaturedCategories()})
}
