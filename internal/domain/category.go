package domain

import "slices"

// Category names used across the three views
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryBooks       = "Books"
	CategoryHomeGarden  = "Home & Garden"
	CategoryToys        = "Toys"
	CategorySports      = "Sports"
	CategoryBeauty      = "Beauty"
	CategoryAccessories = "Accessories"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home"
)

var adminCategories = []string{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHomeGarden,
	CategoryToys,
}

// Featured categories shown on the landing page. Display only, unrelated to
// the per-item IsFeatured flag.
var featuredCategories = []string{
	CategoryElectronics,
	CategoryClothing,
	CategoryHomeGarden,
	CategorySports,
	CategoryBeauty,
	CategoryBooks,
}

var sellerCategories = []string{
	CategoryAccessories,
	CategoryFashion,
	CategoryElectronics,
	CategoryHome,
}

// AdminCategories returns the fixed set of categories a Product may carry
func AdminCategories() []string { return slices.Clone(adminCategories) }

// FeaturedCategories returns the landing page category tiles
func FeaturedCategories() []string { return slices.Clone(featuredCategories) }

// SellerCategories returns the options of the seller listing form
func SellerCategories() []string { return slices.Clone(sellerCategories) }

// IsAdminCategory reports whether name is one of the admin categories
func IsAdminCategory(name string) bool {
	return slices.Contains(adminCategories, name)
}
