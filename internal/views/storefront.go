package views

import (
	"storefront/internal/catalog"
	"storefront/internal/domain"
)

// Storefront is the landing page with its featured product cards
type Storefront struct {
	products *catalog.Store[domain.FeaturedProduct]
}

// NewStorefront creates the landing page over the given cards
func NewStorefront(seed ...domain.FeaturedProduct) *Storefront {
	return &Storefront{
		products: catalog.NewStore(catalog.MaxPlusOne, seed...),
	}
}

// Products returns every card in display order
func (s *Storefront) Products() []domain.FeaturedProduct {
	return s.products.List()
}

// Featured returns only the cards flagged as featured
func (s *Storefront) Featured() []domain.FeaturedProduct {
	return catalog.FeaturedOnly(s.products.List())
}

// ToggleFeatured flips the featured flag of card id. The second result is
// false when no such card exists, in which case nothing changes.
func (s *Storefront) ToggleFeatured(id int) (domain.FeaturedProduct, bool) {
	p, err := s.products.Toggle(id, domain.FieldIsFeatured)
	if err != nil {
		return domain.FeaturedProduct{}, false
	}
	return p, true
}

// Categories returns the category tiles of the landing page
func (s *Storefront) Categories() []string {
	return domain.FeaturedCategories()
}
