package domain

// Category represents a product category in the storefront.
// The json tags correspond to the fields expected in API responses.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// ProductImage is one image attached to a product gallery.
type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// VariantOption is one selectable value within a variant group, with its
// own stock flag and an optional price adjustment relative to the base price.
type VariantOption struct {
	ID            string  `json:"id"`
	Value         string  `json:"value"`
	InStock       bool    `json:"in_stock"`
	PriceModifier float64 `json:"price_modifier,omitempty"`
}

// VariantGroup is a named axis of product configuration,
// e.g. label "Size" with options S / M / L.
type VariantGroup struct {
	Label   string          `json:"label"`
	Options []VariantOption `json:"options"`
}

// Product represents one catalog entry. Products are loaded once at
// startup and treated as immutable afterwards; every package that holds
// a Product holds a shared read-only value.
type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description,omitempty"`
	Price            float64        `json:"price"`
	CompareAtPrice   *float64       `json:"compare_at_price,omitempty"` // original pre-discount price
	Currency         string         `json:"currency"`                   // pass-through label, no conversion
	Images           []ProductImage `json:"images,omitempty"`
	Category         Category       `json:"category"`
	Tags             []string       `json:"tags,omitempty"`
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"review_count"`
	InStock          bool           `json:"in_stock"`
	StockCount       *int           `json:"stock_count,omitempty"`
	SKU              string         `json:"sku"`
	Variants         []VariantGroup `json:"variants,omitempty"`
	IsFeatured       bool           `json:"is_featured,omitempty"`
	IsNew            bool           `json:"is_new,omitempty"`
	IsBestSeller     bool           `json:"is_best_seller,omitempty"`
	CreatedAt        string         `json:"created_at"` // ISO 8601, lexicographically sortable
}

// OnSale reports whether the product carries a discount.
func (p *Product) OnSale() bool {
	return p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price
}

// DiscountPercent returns the rounded percentage discount against the
// compare-at price, or 0 when the product is not on sale.
func (p *Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	return int(((*p.CompareAtPrice-p.Price)/(*p.CompareAtPrice))*100 + 0.5)
}

// Review is customer feedback attached to a product. Reviews ship with
// the static dataset and are never created through this service.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"` // 1-5
	Title     string `json:"title"`
	Body      string `json:"body"`
	Verified  bool   `json:"verified"`
	Helpful   int    `json:"helpful"`
	CreatedAt string `json:"created_at"`
}
