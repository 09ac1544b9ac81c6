package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(registry *session.Registry) http.Handler {
	logger := zap.NewNop()
	r := chi.NewRouter()
	NewSessionHandler(registry, logger).RegisterRoutes(r,
		NewAdminHandler(logger),
		NewStorefrontHandler(logger),
		NewSellerHandler(logger),
	)
	return r
}

type apiClient struct {
	t       *testing.T
	handler http.Handler
	base    string
}

func newClient(t *testing.T) *apiClient {
	t.Helper()
	c := &apiClient{t: t, handler: newTestRouter(session.NewRegistry())}

	w := c.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var s SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	c.base = "/api/sessions/" + s.ID
	return c
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, c.base+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSessionLifecycle(t *testing.T) {
	c := newClient(t)

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "", nil).Code)
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/admin/products", nil).Code)

	c.base = "/api/sessions/not-a-uuid"
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/admin/products", nil).Code)
}

func TestSessionLimit(t *testing.T) {
	handler := newTestRouter(session.NewRegistry(session.WithMaxSessions(1)))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusServiceUnavailable, second.Code)
}

func TestAdmin_ListAndFilter(t *testing.T) {
	c := newClient(t)

	all := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	assert.Len(t, all.Products, 5)
	assert.Equal(t, 5, all.Total)

	filtered := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products?search=PHONE&category=Electronics", nil))
	require.Len(t, filtered.Products, 2)
	assert.Equal(t, "Smartphone", filtered.Products[0].Name)
	assert.Equal(t, "Headphones", filtered.Products[1].Name)
	assert.Equal(t, "Electronics", filtered.Category)

	// filters persist until replaced
	again := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	assert.Len(t, again.Products, 2)

	cleared := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products?search=&category=", nil))
	assert.Len(t, cleared.Products, 5)
}

func TestAdmin_CreateUpdateDelete(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/admin/products", map[string]interface{}{
		"name": "Board Game", "price": 39.99, "stock": "25", "category": "Toys",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[ProductResponse](t, w)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, jsonFloat(39.99), created.Price)

	w = c.do(http.MethodPut, "/admin/products/6", map[string]interface{}{
		"name": "Board Game Deluxe", "price": "49.99", "stock": "10", "category": "Toys",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	list := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	require.Len(t, list.Products, 6)
	assert.Equal(t, "Board Game Deluxe", list.Products[5].Name)

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/admin/products/6", nil).Code)
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/admin/products/6", nil).Code)

	list = decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	assert.Len(t, list.Products, 5)
}

func TestAdmin_UpdateUnknownIsSilent(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPut, "/admin/products/77", map[string]interface{}{
		"name": "Ghost", "price": "1", "stock": "1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	list := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	assert.Len(t, list.Products, 5)
	for _, p := range list.Products {
		assert.NotEqual(t, 77, p.ID)
	}
}

func TestAdmin_ValidationBlocksSubmit(t *testing.T) {
	c := newClient(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing name", body: map[string]interface{}{"price": "1", "stock": "1"}},
		{name: "negative price", body: map[string]interface{}{"name": "A", "price": "-1", "stock": "1"}},
		{name: "fractional stock", body: map[string]interface{}{"name": "A", "price": "1", "stock": "1.5"}},
		{name: "unknown category", body: map[string]interface{}{"name": "A", "price": "1", "stock": "1", "category": "Food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(http.MethodPost, "/admin/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	list := decode[ProductListResponse](t, c.do(http.MethodGet, "/admin/products", nil))
	assert.Len(t, list.Products, 5)
}

func TestAdmin_ModeFlow(t *testing.T) {
	c := newClient(t)

	mode := decode[ModeResponse](t, c.do(http.MethodGet, "/admin/mode", nil))
	assert.Equal(t, "list", mode.Mode)

	w := c.do(http.MethodPut, "/admin/mode", map[string]interface{}{"mode": "edit", "productId": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	mode = decode[ModeResponse](t, w)
	require.NotNil(t, mode.Current)
	assert.Equal(t, "Novel", mode.Current.Name)

	w = c.do(http.MethodPost, "/admin/form", map[string]interface{}{
		"name": "Novel (paperback)", "price": "9.99", "stock": "150", "category": "Books",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 5, decode[ProductResponse](t, w).ID)

	mode = decode[ModeResponse](t, c.do(http.MethodGet, "/admin/mode", nil))
	assert.Equal(t, "list", mode.Mode)
	assert.Nil(t, mode.Current)

	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/admin/mode", map[string]interface{}{"mode": "add"}).Code)
	w = c.do(http.MethodPost, "/admin/form", map[string]interface{}{"name": "Puzzle", "price": "12", "stock": "40"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[ProductResponse](t, w)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Electronics", created.Category)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPut, "/admin/mode", map[string]interface{}{"mode": "edit", "productId": 40}).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/admin/mode", map[string]interface{}{"mode": "edit"}).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/admin/mode", map[string]interface{}{"mode": "preview"}).Code)
}

func TestStorefront_ToggleFeatured(t *testing.T) {
	c := newClient(t)

	featured := decode[map[string][]FeaturedProductResponse](t, c.do(http.MethodGet, "/storefront/featured", nil))
	assert.Empty(t, featured["products"])

	w := c.do(http.MethodPost, "/storefront/products/2/toggle-featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[FeaturedProductResponse](t, w).IsFeatured)

	featured = decode[map[string][]FeaturedProductResponse](t, c.do(http.MethodGet, "/storefront/featured", nil))
	require.Len(t, featured["products"], 1)
	assert.Equal(t, "Smart Watch", featured["products"][0].Name)

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/storefront/products/99/toggle-featured", nil).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/storefront/products/abc/toggle-featured", nil).Code)

	categories := decode[map[string][]string](t, c.do(http.MethodGet, "/storefront/categories", nil))
	assert.Len(t, categories["categories"], 6)
}

func TestProperty_ToggleTwiceOverHTTPRestoresFlag(t *testing.T) {
	c := newClient(t)
	properties := gopter.NewProperties(nil)

	properties.Property("two toggles leave the card as it was", prop.ForAll(
		func(id int) bool {
			path := "/storefront/products/" + strconv.Itoa(id) + "/toggle-featured"
			first := decode[FeaturedProductResponse](t, c.do(http.MethodPost, path, nil))
			second := decode[FeaturedProductResponse](t, c.do(http.MethodPost, path, nil))
			return first.IsFeatured != second.IsFeatured && first.ID == id
		},
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSeller_CreateAndSummary(t *testing.T) {
	c := newClient(t)

	summary := decode[map[string]interface{}](t, c.do(http.MethodGet, "/seller/summary", nil))
	assert.Equal(t, float64(205), summary["totalReviews"])
	assert.InDelta(t, 4.35, summary["averageRating"], 1e-9)

	w := c.do(http.MethodPost, "/seller/products", map[string]interface{}{
		"name": "Silk Scarf", "category": "Fashion", "description": "Hand dyed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[SellerProductResponse](t, w)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, []string{"/placeholder.svg"}, created.Photos)
	assert.Zero(t, created.TotalReviews)

	summary = decode[map[string]interface{}](t, c.do(http.MethodGet, "/seller/summary", nil))
	assert.Equal(t, float64(3), summary["totalProducts"])
	assert.InDelta(t, 2.9, summary["averageRating"], 1e-9)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/seller/products", map[string]interface{}{"category": "Fashion"}).Code)

	fashion := decode[map[string][]SellerProductResponse](t, c.do(http.MethodGet, "/seller/products?category=Fashion", nil))
	assert.Len(t, fashion["products"], 2)
}

func TestSummaryResponse_EmptyAverageIsNull(t *testing.T) {
	raw, err := json.Marshal(toSummaryResponse(0, catalog.AggregateReviews(nil)))

	require.NoError(t, err)
	assert.JSONEq(t, `{"totalProducts":0,"totalReviews":0,"averageRating":null}`, string(raw))
}

func TestFormText_AcceptsStringsAndNumbers(t *testing.T) {
	var req ProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","price":12.5,"stock":"3"}`), &req))

	assert.Equal(t, FormText("12.5"), req.Price)
	assert.Equal(t, FormText("3"), req.Stock)

	assert.Error(t, json.Unmarshal([]byte(`{"price":true}`), &req))
}
