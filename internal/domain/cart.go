package domain

// LineItem is one entry in a cart: its own generated id, the product it
// wraps, a quantity that is always >= 1 while the item exists, and the
// variant selection made at add time (nil when the product has none).
type LineItem struct {
	ID               string            `json:"id"`
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selected_variants,omitempty"` // e.g. {"Size": "M"}
}

// Totals are the monetary fields derived from a cart's line items.
// They are always recomputed from the items, never stored independently.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"` // sum of quantities, not number of lines
}

// Cart is the read view handed to callers: the line items, the derived
// totals, and the drawer visibility flag.
type Cart struct {
	Items  []LineItem `json:"items"`
	Totals
	IsOpen bool `json:"is_open"`
}
