package catalog

import "storefront-service/internal/domain"

// Catalog is the in-memory read model the dataset provider fills once at
// startup. It is immutable after construction and safe to share across
// any number of goroutines.
type Catalog struct {
	products   []domain.Product
	categories []domain.Category
	bySlug     map[string]int // index into products
	byID       map[string]int
	reviews    map[string][]domain.Review // keyed by product id
}

// New builds a Catalog over the supplied collections. The slices are
// retained as-is; callers must not modify them afterwards.
func New(products []domain.Product, categories []domain.Category, reviews []domain.Review) *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		bySlug:     make(map[string]int, len(products)),
		byID:       make(map[string]int, len(products)),
		reviews:    make(map[string][]domain.Review),
	}
	for i, p := range products {
		c.bySlug[p.Slug] = i
		c.byID[p.ID] = i
	}
	for _, r := range reviews {
		c.reviews[r.ProductID] = append(c.reviews[r.ProductID], r)
	}
	return c
}

// Products returns the full product collection in dataset order.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Categories returns all categories in dataset order.
func (c *Catalog) Categories() []domain.Category {
	return c.categories
}

// ProductBySlug looks a product up by its URL slug.
func (c *Catalog) ProductBySlug(slug string) (domain.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ProductByID looks a product up by its id.
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ReviewsForProduct returns the reviews attached to a product, in
// dataset order. Missing products yield an empty slice.
func (c *Catalog) ReviewsForProduct(productID string) []domain.Review {
	return c.reviews[productID]
}

// Featured returns the products flagged for the home page, in dataset order.
func (c *Catalog) Featured() []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n other products from the same category as p,
// for the product-detail recommendation rail.
func (c *Catalog) Related(p domain.Product, n int) []domain.Product {
	var out []domain.Product
	for _, candidate := range c.products {
		if len(out) == n {
			break
		}
		if candidate.ID != p.ID && candidate.Category.Slug == p.Category.Slug {
			out = append(out, candidate)
		}
	}
	return out
}
