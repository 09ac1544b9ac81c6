package views

import (
	"errors"
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/domain"
)

var ErrUnknownMode = errors.New("unknown view mode")

// Mode is the screen the admin dashboard is showing
type Mode string

const (
	ModeList Mode = "list"
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeList, ModeAdd, ModeEdit:
		return m, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// AdminDashboard is the product management page. It owns its catalog and
// the list filters.
type AdminDashboard struct {
	products       *catalog.Store[domain.Product]
	mode           Mode
	current        *domain.Product
	searchTerm     string
	categoryFilter *string
}

// NewAdminDashboard creates the dashboard over the given products, issuing
// new ids as max+1
func NewAdminDashboard(seed ...domain.Product) *AdminDashboard {
	return &AdminDashboard{
		products: catalog.NewStore(catalog.MaxPlusOne, seed...),
		mode:     ModeList,
	}
}

// Products returns the full, unfiltered catalog
func (d *AdminDashboard) Products() []domain.Product {
	return d.products.List()
}

// Filtered returns the catalog narrowed by the current search term and
// category filter. It is recomputed on every call.
func (d *AdminDashboard) Filtered() []domain.Product {
	return catalog.FilterByNameAndCategory(d.products.List(), d.searchTerm, d.categoryFilter)
}

// SetSearch sets the name search term
func (d *AdminDashboard) SetSearch(term string) {
	d.searchTerm = term
}

// SetCategoryFilter narrows the list to one category. An empty name means
// all categories.
func (d *AdminDashboard) SetCategoryFilter(category string) {
	if category == "" {
		d.categoryFilter = nil
		return
	}
	d.categoryFilter = &category
}

// Filters returns the current search term and category filter ("" for all)
func (d *AdminDashboard) Filters() (search, category string) {
	if d.categoryFilter != nil {
		category = *d.categoryFilter
	}
	return d.searchTerm, category
}

// Mode returns the active view mode
func (d *AdminDashboard) Mode() Mode {
	return d.mode
}

// Current returns the product being edited, if any
func (d *AdminDashboard) Current() (domain.Product, bool) {
	if d.current == nil {
		return domain.Product{}, false
	}
	return *d.current, true
}

// StartAdd switches to the empty product form
func (d *AdminDashboard) StartAdd() {
	d.mode = ModeAdd
	d.current = nil
}

// StartEdit switches to the product form prefilled with the product id
func (d *AdminDashboard) StartEdit(id int) error {
	p, ok := d.products.Get(id)
	if !ok {
		return fmt.Errorf("edit product %d: %w", id, catalog.ErrRecordNotFound)
	}
	d.mode = ModeEdit
	d.current = &p
	return nil
}

// Cancel returns to the product list without changes
func (d *AdminDashboard) Cancel() {
	d.mode = ModeList
	d.current = nil
}

// Submit applies the form for the active mode: insert in add mode, replace
// the product being edited in edit mode. The dashboard returns to the list
// unless the form fails to parse.
func (d *AdminDashboard) Submit(form ProductForm) (domain.Product, error) {
	if d.mode == ModeEdit && d.current != nil {
		return d.Update(d.current.ID, form)
	}
	return d.Add(form)
}

// Add inserts a product from the form and returns to the list
func (d *AdminDashboard) Add(form ProductForm) (domain.Product, error) {
	p, err := ParseProductForm(form)
	if err != nil {
		return domain.Product{}, err
	}

	created := d.products.Insert(p)
	d.Cancel()
	return created, nil
}

// Update replaces product id with the form values. The dashboard returns to
// the list only when it was editing that product. An unknown id leaves the
// catalog unchanged and is not reported.
func (d *AdminDashboard) Update(id int, form ProductForm) (domain.Product, error) {
	p, err := ParseProductForm(form)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id

	_, _ = d.products.Update(p)
	if d.mode == ModeEdit && d.current != nil && d.current.ID == id {
		d.Cancel()
	}
	return p, nil
}

// Delete removes product id; unknown ids are ignored
func (d *AdminDashboard) Delete(id int) {
	d.products.Remove(id)
	if d.current != nil && d.current.ID == id {
		d.Cancel()
	}
}

// Categories returns the categories a product may be filed under
func (d *AdminDashboard) Categories() []string {
	return domain.AdminCategories()
}
