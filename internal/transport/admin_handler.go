package transport

import (
	"errors"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler handles HTTP requests for the admin product dashboard
type AdminHandler struct {
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(logger *zap.Logger) *AdminHandler {
	return &AdminHandler{logger: logger}
}

// RegisterRoutes registers all admin dashboard routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
		r.Put("/products/{productID}", h.UpdateProduct)
		r.Delete("/products/{productID}", h.DeleteProduct)
		r.Get("/categories", h.ListCategories)
		r.Get("/mode", h.GetMode)
		r.Put("/mode", h.SetMode)
		r.Post("/form", h.SubmitForm)
	})
}

// ListProducts returns the product table. The search and category query
// parameters, when present, replace the dashboard filters first.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var resp ProductListResponse
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		if query.Has("search") {
			p.Admin.SetSearch(query.Get("search"))
		}
		if query.Has("category") {
			p.Admin.SetCategoryFilter(query.Get("category"))
		}

		filtered := p.Admin.Filtered()
		search, category := p.Admin.Filters()
		resp = ProductListResponse{
			Products: toProductResponses(filtered),
			Total:    len(p.Admin.Products()),
			Search:   search,
			Category: category,
		}
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateProduct adds a product with the next id
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeForm(w, r, h.logger, &req) {
		return
	}

	var (
		created domain.Product
		err     error
	)
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		created, err = p.Admin.Add(req.form())
	})
	if err != nil {
		h.respondFormError(w, err)
		return
	}

	middleware.CatalogMutations.WithLabelValues("admin", "insert").Inc()
	h.logger.Info("Product created", zap.Int("product_id", created.ID), zap.String("name", created.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProduct replaces a product. An unknown id changes nothing and is not
// reported as an error.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if !decodeForm(w, r, h.logger, &req) {
		return
	}

	var (
		updated domain.Product
		err     error
	)
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		updated, err = p.Admin.Update(id, req.form())
	})
	if err != nil {
		h.respondFormError(w, err)
		return
	}

	middleware.CatalogMutations.WithLabelValues("admin", "update").Inc()
	h.logger.Info("Product updated", zap.Int("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProduct removes a product; unknown ids are ignored
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		p.Admin.Delete(id)
	})

	middleware.CatalogMutations.WithLabelValues("admin", "remove").Inc()
	h.logger.Info("Product deleted", zap.Int("product_id", id))
	middleware.RespondNoContent(w)
}

// ListCategories returns the categories offered by the product form
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{"categories": domain.AdminCategories()})
}

// GetMode returns the current dashboard screen
func (h *AdminHandler) GetMode(w http.ResponseWriter, r *http.Request) {
	var resp ModeResponse
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		resp = modeResponse(p.Admin)
	})
	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// SetMode switches between the list, add and edit screens
func (h *AdminHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req ModeRequest
	if !decodeForm(w, r, h.logger, &req) {
		return
	}

	mode, err := views.ParseMode(req.Mode)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var resp ModeResponse
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		switch mode {
		case views.ModeAdd:
			p.Admin.StartAdd()
		case views.ModeEdit:
			err = p.Admin.StartEdit(req.ProductID)
		default:
			p.Admin.Cancel()
		}
		resp = modeResponse(p.Admin)
	})
	if errors.Is(err, catalog.ErrRecordNotFound) {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// SubmitForm submits the product form of the current screen: insert on the
// add screen, replace on the edit screen
func (h *AdminHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeForm(w, r, h.logger, &req) {
		return
	}

	var (
		saved  domain.Product
		edited bool
		err    error
	)
	sessionFromContext(r.Context()).Do(func(p session.Pages) {
		edited = p.Admin.Mode() == views.ModeEdit
		saved, err = p.Admin.Submit(req.form())
	})
	if err != nil {
		h.respondFormError(w, err)
		return
	}

	status, op := http.StatusCreated, "insert"
	if edited {
		status, op = http.StatusOK, "update"
	}
	middleware.CatalogMutations.WithLabelValues("admin", op).Inc()
	h.logger.Info("Product form submitted", zap.String("op", op), zap.Int("product_id", saved.ID))
	middleware.RespondWithJSON(w, status, toProductResponse(saved))
}

func (h *AdminHandler) respondFormError(w http.ResponseWriter, err error) {
	if errors.Is(err, views.ErrMalformedStock) {
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "stock", Message: "Value must be a whole number greater than or equal to 0"},
		})
		return
	}

	h.logger.Error("Failed to save product", zap.Error(err))
	middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save product")
}

func modeResponse(d *views.AdminDashboard) ModeResponse {
	resp := ModeResponse{Mode: string(d.Mode())}
	if current, ok := d.Current(); ok {
		p := toProductResponse(current)
		resp.Current = &p
	}
	return resp
}
