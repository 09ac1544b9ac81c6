package domain

import "slices"

// PlaceholderImage is the image reference used until real uploads exist
const PlaceholderImage = "/placeholder.svg"

// Product represents a product row on the admin dashboard
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

func (p Product) RecordID() int          { return p.ID }
func (p Product) RecordName() string     { return p.Name }
func (p Product) RecordCategory() string { return p.Category }

// WithID returns a copy of the product carrying the given id
func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

// FeaturedProduct represents a product card on the storefront landing page
type FeaturedProduct struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	IsFeatured bool    `json:"isFeatured"`
}

// FieldIsFeatured names the only boolean field of FeaturedProduct
const FieldIsFeatured = "isFeatured"

func (p FeaturedProduct) RecordID() int { return p.ID }

// WithID returns a copy of the product carrying the given id
func (p FeaturedProduct) WithID(id int) FeaturedProduct {
	p.ID = id
	return p
}

// ToggleField returns a copy with the named boolean field flipped.
// The second result is false when the field does not exist.
func (p FeaturedProduct) ToggleField(name string) (FeaturedProduct, bool) {
	switch name {
	case FieldIsFeatured:
		p.IsFeatured = !p.IsFeatured
		return p, true
	default:
		return p, false
	}
}

// SellerProduct represents a listing on the seller dashboard
type SellerProduct struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	Photos        []string `json:"photos"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
}

// NewSellerProduct builds a fresh listing with a placeholder photo and no reviews
func NewSellerProduct(name, category, description string) SellerProduct {
	return SellerProduct{
		Name:          name,
		Category:      category,
		Description:   description,
		Photos:        []string{PlaceholderImage},
		AverageRating: 0,
		TotalReviews:  0,
	}
}

func (p SellerProduct) RecordID() int          { return p.ID }
func (p SellerProduct) RecordName() string     { return p.Name }
func (p SellerProduct) RecordCategory() string { return p.Category }

// WithID returns a copy of the listing carrying the given id
func (p SellerProduct) WithID(id int) SellerProduct {
	p.ID = id
	return p
}

// Clone returns a copy of the listing with its own photo list
func (p SellerProduct) Clone() SellerProduct {
	p.Photos = slices.Clone(p.Photos)
	return p
}
