package catalog

import (
	"strings"

	"storefront/internal/domain"
)

// Categorized is implemented by records that can be searched by name and
// narrowed by category
type Categorized interface {
	RecordName() string
	RecordCategory() string
}

// ReviewSummary holds the seller dashboard totals
type ReviewSummary struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// FilterByNameAndCategory keeps records whose name contains search, ignoring
// case, and whose category equals *category when category is non-nil.
// An empty search matches every name. The input is never modified.
func FilterByNameAndCategory[T Categorized](records []T, search string, category *string) []T {
	needle := strings.ToLower(search)

	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.RecordName()), needle) {
			continue
		}
		if category != nil && rec.RecordCategory() != *category {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered
}

// AggregateReviews sums review counts and averages the per-listing ratings.
// The average is unweighted by review count. For an empty collection the
// average is NaN.
func AggregateReviews(records []domain.SellerProduct) ReviewSummary {
	var (
		total     int
		ratingSum float64
	)
	for _, rec := range records {
		total += rec.TotalReviews
		ratingSum += rec.AverageRating
	}

	return ReviewSummary{
		TotalReviews:  total,
		AverageRating: ratingSum / float64(len(records)),
	}
}

// FeaturedOnly returns the storefront products currently flagged as featured
func FeaturedOnly(records []domain.FeaturedProduct) []domain.FeaturedProduct {
	featured := make([]domain.FeaturedProduct, 0, len(records))
	for _, rec := range records {
		if rec.IsFeatured {
			featured = append(featured, rec)
		}
	}
	return featured
}
