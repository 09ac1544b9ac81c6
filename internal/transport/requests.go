package transport

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/views"
)

// FormText is a form field posted either as a JSON string or a bare number.
// Browsers submit every input as text; API clients tend to send numbers.
type FormText string

func (f *FormText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FormText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FormText(n.String())
	return nil
}

// ProductRequest represents the admin product form payload
type ProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    FormText `json:"price" validate:"required,number_min0"`
	Stock    FormText `json:"stock" validate:"required,integer_min0"`
	Category string   `json:"category" validate:"omitempty,admin_category"`
}

func (r ProductRequest) form() views.ProductForm {
	return views.ProductForm{
		Name:     r.Name,
		Price:    string(r.Price),
		Stock:    string(r.Stock),
		Category: r.Category,
	}
}

// ModeRequest switches the admin dashboard between list, add and edit
type ModeRequest struct {
	Mode      string `json:"mode" validate:"required,oneof=list add edit"`
	ProductID int    `json:"productId" validate:"required_if=Mode edit"`
}

// SellerProductRequest represents the new listing form payload
type SellerProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"omitempty,oneof=Accessories Fashion Electronics Home"`
	Description string `json:"description" validate:"max=2000"`
}

// jsonFloat encodes NaN and infinities as null, which encoding/json rejects
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

// ProductResponse represents an admin product
type ProductResponse struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Price    jsonFloat `json:"price"`
	Stock    int       `json:"stock"`
	Category string    `json:"category"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    jsonFloat(p.Price),
		Stock:    p.Stock,
		Category: p.Category,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// ProductListResponse represents the filtered admin product table
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Search   string            `json:"search"`
	Category string            `json:"category,omitempty"`
}

// ModeResponse describes the admin dashboard screen
type ModeResponse struct {
	Mode    string           `json:"mode"`
	Current *ProductResponse `json:"current,omitempty"`
}

// FeaturedProductResponse represents a storefront card
type FeaturedProductResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Price      jsonFloat `json:"price"`
	IsFeatured bool      `json:"isFeatured"`
	ImageURL   string    `json:"imageUrl"`
}

func toFeaturedResponses(products []domain.FeaturedProduct) []FeaturedProductResponse {
	out := make([]FeaturedProductResponse, len(products))
	for i, p := range products {
		out[i] = FeaturedProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			Price:      jsonFloat(p.Price),
			IsFeatured: p.IsFeatured,
			ImageURL:   domain.PlaceholderImage,
		}
	}
	return out
}

// SummaryResponse represents the seller dashboard totals. AverageRating is
// null when there are no listings.
type SummaryResponse struct {
	TotalProducts int       `json:"totalProducts"`
	TotalReviews  int       `json:"totalReviews"`
	AverageRating jsonFloat `json:"averageRating"`
}

func toSummaryResponse(count int, s catalog.ReviewSummary) SummaryResponse {
	return SummaryResponse{
		TotalProducts: count,
		TotalReviews:  s.TotalReviews,
		AverageRating: jsonFloat(s.AverageRating),
	}
}

// SellerProductResponse represents a seller listing
type SellerProductResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Photos        []string  `json:"photos"`
	AverageRating jsonFloat `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
}

func toSellerResponses(products []domain.SellerProduct) []SellerProductResponse {
	out := make([]SellerProductResponse, len(products))
	for i, p := range products {
		out[i] = toSellerResponse(p)
	}
	return out
}

func toSellerResponse(p domain.SellerProduct) SellerProductResponse {
	return SellerProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Photos:        p.Photos,
		AverageRating: jsonFloat(p.AverageRating),
		TotalReviews:  p.TotalReviews,
	}
}
