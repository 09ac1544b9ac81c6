package transport

import (
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SellerHandler handles HTTP requests for the seller dashboard
type SellerHandler struct {
	logger *zap.Logger
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(logger *zap.Logger) *SellerHandler {
	return &SellerHandler{logger: logger}
}

// RegisterRoutes registers all seller dashboard routes
func (h *SellerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/seller", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
		r.Get("/summary", h.GetSummary)
		r.Get("/categories", h.ListCategories)
	})
}

// ListProducts returns the seller's listings, optionally narrowed by the
// search and category query parameters
func (h *SellerHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var category *string
	if c := query.Get("category"); c != "" {
		category = &c
	}

	var products []domain.SellerProduct
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		products = p.Seller.Search(query.Get("search"), category)
	})
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]SellerProductResponse{"products": toSellerResponses(products)})
}

// CreateProduct lists a new product with no reviews yet
func (h *SellerHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req SellerProductRequest
	if !decodeForm(w, r, h.logger, &req) {
		return
	}

	var created domain.SellerProduct
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		created = p.Seller.AddProduct(views.SellerForm{
			Name:        req.Name,
			Category:    req.Category,
			Description: req.Description,
		})
	})

	middleware.CatalogMutations.WithLabelValues("seller", "insert").Inc()
	h.logger.Info("Listing created", zap.Int("product_id", created.ID), zap.String("name", created.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, toSellerResponse(created))
}

// GetSummary returns review totals across all listings
func (h *SellerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var (
		count   int
		summary catalog.ReviewSummary
	)
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		count = len(p.Seller.Products())
		summary = p.Seller.Summary()
	})
	middleware.RespondWithJSON(w, http.StatusOK, toSummaryResponse(count, summary))
}

// ListCategories returns the options of the listing form
func (h *SellerHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{"categories": domain.SellerCategories()})
}
