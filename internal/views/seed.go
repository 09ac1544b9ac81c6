package views

import "storefront/internal/domain"

// DefaultAdminProducts returns the demo catalog the admin dashboard opens with
func DefaultAdminProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 50, Category: domain.CategoryElectronics},
		{ID: 2, Name: "Smartphone", Price: 599.99, Stock: 100, Category: domain.CategoryElectronics},
		{ID: 3, Name: "Headphones", Price: 129.99, Stock: 200, Category: domain.CategoryElectronics},
		{ID: 4, Name: "T-Shirt", Price: 19.99, Stock: 300, Category: domain.CategoryClothing},
		{ID: 5, Name: "Novel", Price: 14.99, Stock: 150, Category: domain.CategoryBooks},
	}
}

// DefaultFeaturedProducts returns the landing page cards, none featured yet
func DefaultFeaturedProducts() []domain.FeaturedProduct {
	return []domain.FeaturedProduct{
		{ID: 1, Name: "Wireless Headphones", Price: 99.99},
		{ID: 2, Name: "Smart Watch", Price: 199.99},
		{ID: 3, Name: "Laptop", Price: 999.99},
		{ID: 4, Name: "Smartphone", Price: 699.99},
	}
}

// DefaultSellerProducts returns the listings the seller dashboard opens with
func DefaultSellerProducts() []domain.SellerProduct {
	return []domain.SellerProduct{
		{
			ID:            1,
			Name:          "Elegant Watch",
			Category:      domain.CategoryAccessories,
			Photos:        []string{domain.PlaceholderImage},
			AverageRating: 4.5,
			TotalReviews:  120,
		},
		{
			ID:            2,
			Name:          "Leather Bag",
			Category:      domain.CategoryFashion,
			Photos:        []string{domain.PlaceholderImage},
			AverageRating: 4.2,
			TotalReviews:  85,
		},
	}
}
