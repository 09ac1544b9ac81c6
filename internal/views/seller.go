package views

import (
	"storefront/internal/catalog"
	"storefront/internal/domain"
)

// SellerForm is the new listing form of the seller dashboard
type SellerForm struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// SellerDashboard lists a seller's products with their review totals
type SellerDashboard struct {
	products *catalog.Store[domain.SellerProduct]
	draft    SellerForm
}

// NewSellerDashboard creates the dashboard over the given listings. New
// listings get count+1 ids.
func NewSellerDashboard(seed ...domain.SellerProduct) *SellerDashboard {
	return &SellerDashboard{
		products: catalog.NewStore(catalog.CountPlusOne, seed...),
	}
}

// Products returns every listing in insertion order
func (d *SellerDashboard) Products() []domain.SellerProduct {
	return d.products.List()
}

// Search narrows the listings by name and optional category
func (d *SellerDashboard) Search(term string, category *string) []domain.SellerProduct {
	return catalog.FilterByNameAndCategory(d.products.List(), term, category)
}

// Summary aggregates review counts and ratings over all listings
func (d *SellerDashboard) Summary() catalog.ReviewSummary {
	return catalog.AggregateReviews(d.products.List())
}

// Draft returns the form as currently filled in
func (d *SellerDashboard) Draft() SellerForm {
	return d.draft
}

// SetDraft replaces the form contents
func (d *SellerDashboard) SetDraft(form SellerForm) {
	d.draft = form
}

// Submit adds the drafted listing and clears the form
func (d *SellerDashboard) Submit() domain.SellerProduct {
	form := d.draft
	created := d.products.Insert(domain.NewSellerProduct(form.Name, form.Category, form.Description))
	d.draft = SellerForm{}
	return created
}

// AddProduct drafts and submits a listing in one step
func (d *SellerDashboard) AddProduct(form SellerForm) domain.SellerProduct {
	d.SetDraft(form)
	return d.Submit()
}

// Categories returns the options of the listing form
func (d *SellerDashboard) Categories() []string {
	return domain.SellerCategories()
}
