package catalog

import (
	"sort"
	"strings"

	"storefront-service/internal/domain"
)

// SortOption selects the display order of a product listing.
type SortOption string

const (
	SortPopular   SortOption = "popular" // default: most reviewed first
	SortNewest    SortOption = "newest"
	SortRating    SortOption = "rating"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// ParseSortOption maps a query-string value to a SortOption. Unknown or
// empty values fall back to SortPopular, mirroring the listing default.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortNewest, SortRating, SortPriceAsc, SortPriceDesc:
		return SortOption(s)
	default:
		return SortPopular
	}
}

// Params is one listing selection: an optional category slug, optional
// free-text search, and a sort mode. Zero values select everything in
// popular order.
type Params struct {
	CategorySlug string
	Search       string
	Sort         SortOption
}

// Query produces the filtered, ordered view of products for the given
// selection. The pipeline order is fixed: category filter, then search
// filter, then sort. Products are never copied or mutated; the returned
// slice aliases the input's elements. An empty result is a valid answer,
// not an error.
func Query(products []domain.Product, params Params) []domain.Product {
	result := products

	if params.CategorySlug != "" {
		filtered := make([]domain.Product, 0, len(result))
		for _, p := range result {
			if p.Category.Slug == params.CategorySlug {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	if params.Search != "" {
		q := strings.ToLower(params.Search)
		filtered := make([]domain.Product, 0, len(result))
		for _, p := range result {
			if matchesSearch(&p, q) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	// Sort on a copy so callers sharing the input slice are unaffected.
	sorted := make([]domain.Product, len(result))
	copy(sorted, result)

	// Stable sort: equal keys keep their pre-sort relative order.
	switch params.Sort {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	default: // SortPopular
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ReviewCount > sorted[j].ReviewCount
		})
	}

	return sorted
}

// matchesSearch reports whether the lowercased query appears as a
// substring of the product name, description, any tag, or the category
// name. q must already be lowercased.
func matchesSearch(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
