package catalog

import (
	"testing"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() *Catalog {
	ceramics := domain.Category{ID: "c1", Name: "Ceramics", Slug: "ceramics"}
	textiles := domain.Category{ID: "c2", Name: "Textiles", Slug: "textiles"}

	products := []domain.Product{
		{ID: "p1", Name: "Mug", Slug: "mug", Category: ceramics, IsFeatured: true},
		{ID: "p2", Name: "Vase", Slug: "vase", Category: ceramics},
		{ID: "p3", Name: "Bowl", Slug: "bowl", Category: ceramics, IsFeatured: true},
		{ID: "p4", Name: "Scarf", Slug: "scarf", Category: textiles},
	}
	reviews := []domain.Review{
		{ID: "r1", ProductID: "p1", Rating: 5},
		{ID: "r2", ProductID: "p1", Rating: 4},
	}
	return New(products, []domain.Category{ceramics, textiles}, reviews)
}

func TestProductBySlug(t *testing.T) {
	c := catalogFixture()

	p, ok := c.ProductBySlug("vase")
	require.True(t, ok)
	assert.Equal(t, "p2", p.ID)

	_, ok = c.ProductBySlug("no-such-slug")
	assert.False(t, ok)
}

func TestProductByID(t *testing.T) {
	c := catalogFixture()

	p, ok := c.ProductByID("p4")
	require.True(t, ok)
	assert.Equal(t, "scarf", p.Slug)

	_, ok = c.ProductByID("p99")
	assert.False(t, ok)
}

func TestReviewsForProduct(t *testing.T) {
	c := catalogFixture()

	assert.Len(t, c.ReviewsForProduct("p1"), 2)
	assert.Empty(t, c.ReviewsForProduct("p2"))
}

func TestFeatured(t *testing.T) {
	c := catalogFixture()

	featured := c.Featured()
	require.Len(t, featured, 2)
	assert.Equal(t, "p1", featured[0].ID)
	assert.Equal(t, "p3", featured[1].ID)
}

func TestRelated_SameCategoryExcludingSelf(t *testing.T) {
	c := catalogFixture()
	mug, _ := c.ProductByID("p1")

	related := c.Related(mug, 4)
	require.Len(t, related, 2)
	assert.Equal(t, "p2", related[0].ID)
	assert.Equal(t, "p3", related[1].ID)
}

func TestRelated_HonorsLimit(t *testing.T) {
	c := catalogFixture()
	mug, _ := c.ProductByID("p1")

	assert.Len(t, c.Related(mug, 1), 1)
}

func TestRelated_NoSiblings(t *testing.T) {
	c := catalogFixture()
	scarf, _ := c.ProductByID("p4")

	assert.Empty(t, c.Related(scarf, 4))
}
