package catalog

import (
	"testing"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", Name: "Blue Mug", Description: "A sturdy ceramic mug",
			Category: domain.Category{Name: "Ceramics", Slug: "ceramics"},
			Tags:     []string{"mug", "kitchen"},
			Price:    20, Rating: 4.2, ReviewCount: 10, CreatedAt: "2023-01-01",
		},
		{
			ID: "p2", Name: "Red Vase", Description: "A tall ceramic vase",
			Category: domain.Category{Name: "Ceramics", Slug: "ceramics"},
			Tags:     []string{"vase"},
			Price:    40, Rating: 4.8, ReviewCount: 50, CreatedAt: "2024-06-01",
		},
		{
			ID: "p3", Name: "Wool Scarf", Description: "A soft woven scarf",
			Category: domain.Category{Name: "Textiles", Slug: "textiles"},
			Tags:     []string{"scarf", "winter"},
			Price:    60, Rating: 4.5, ReviewCount: 5, CreatedAt: "2024-01-01",
		},
	}
}

func names(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestQuery_CategoryFilterThenPriceSort(t *testing.T) {
	result := Query(queryFixture(), Params{CategorySlug: "ceramics", Sort: SortPriceAsc})
	assert.Equal(t, []string{"Blue Mug", "Red Vase"}, names(result))
}

func TestQuery_SearchMatchesName(t *testing.T) {
	result := Query(queryFixture(), Params{Search: "scarf"})
	assert.Equal(t, []string{"Wool Scarf"}, names(result))
}

func TestQuery_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	result := Query(queryFixture(), Params{Search: "VaS"})
	assert.Equal(t, []string{"Red Vase"}, names(result))
}

func TestQuery_SearchMatchesDescription(t *testing.T) {
	result := Query(queryFixture(), Params{Search: "woven"})
	assert.Equal(t, []string{"Wool Scarf"}, names(result))
}

func TestQuery_SearchMatchesTags(t *testing.T) {
	result := Query(queryFixture(), Params{Search: "winter"})
	assert.Equal(t, []string{"Wool Scarf"}, names(result))
}

func TestQuery_SearchMatchesCategoryName(t *testing.T) {
	result := Query(queryFixture(), Params{Search: "textil", Sort: SortPopular})
	assert.Equal(t, []string{"Wool Scarf"}, names(result))
}

func TestQuery_DefaultSortIsPopular(t *testing.T) {
	result := Query(queryFixture(), Params{})
	assert.Equal(t, []string{"Red Vase", "Blue Mug", "Wool Scarf"}, names(result))
}

func TestQuery_SortModes(t *testing.T) {
	tests := []struct {
		sort SortOption
		want []string
	}{
		{SortPopular, []string{"Red Vase", "Blue Mug", "Wool Scarf"}},
		{SortNewest, []string{"Red Vase", "Wool Scarf", "Blue Mug"}},
		{SortRating, []string{"Red Vase", "Wool Scarf", "Blue Mug"}},
		{SortPriceAsc, []string{"Blue Mug", "Red Vase", "Wool Scarf"}},
		{SortPriceDesc, []string{"Wool Scarf", "Red Vase", "Blue Mug"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			result := Query(queryFixture(), Params{Sort: tt.sort})
			assert.Equal(t, tt.want, names(result))
		})
	}
}

func TestQuery_SortIsStableOnEqualKeys(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "First", Price: 30, ReviewCount: 10},
		{ID: "b", Name: "Second", Price: 30, ReviewCount: 10},
		{ID: "c", Name: "Third", Price: 30, ReviewCount: 10},
	}

	for _, sort := range []SortOption{SortPopular, SortNewest, SortRating, SortPriceAsc, SortPriceDesc} {
		result := Query(products, Params{Sort: sort})
		assert.Equal(t, []string{"First", "Second", "Third"}, names(result), "sort %q broke input order", sort)
	}
}

func TestQuery_SearchAppliesAfterCategoryFilter(t *testing.T) {
	// "ceramic" appears in both ceramics products' descriptions, but the
	// textiles filter runs first and leaves nothing for the search.
	result := Query(queryFixture(), Params{CategorySlug: "textiles", Search: "ceramic"})
	assert.Empty(t, result)
}

func TestQuery_EmptyInputYieldsEmptyResult(t *testing.T) {
	assert.Empty(t, Query(nil, Params{Sort: SortPriceAsc}))
	assert.Empty(t, Query([]domain.Product{}, Params{}))
}

func TestQuery_NoMatchesYieldsEmptyResultNotError(t *testing.T) {
	result := Query(queryFixture(), Params{CategorySlug: "no-such-category"})
	assert.Empty(t, result)
}

func TestQuery_DoesNotReorderInputSlice(t *testing.T) {
	products := queryFixture()
	Query(products, Params{Sort: SortPriceDesc})

	require.Equal(t, "Blue Mug", products[0].Name)
	require.Equal(t, "Red Vase", products[1].Name)
	require.Equal(t, "Wool Scarf", products[2].Name)
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortOption("newest"))
	assert.Equal(t, SortPriceAsc, ParseSortOption("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortOption("price-desc"))
	assert.Equal(t, SortRating, ParseSortOption("rating"))
	assert.Equal(t, SortPopular, ParseSortOption("popular"))
	assert.Equal(t, SortPopular, ParseSortOption(""))
	assert.Equal(t, SortPopular, ParseSortOption("garbage"))
}
