package cart

import (
	"sync"

	"storefront-service/internal/domain"

	"github.com/google/uuid"
)

// Pricing policy. These are business constants, not configuration.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 150.0
	ShippingCost          = 12.0
)

// Engine owns the cart state for one session: an ordered collection of
// line items plus the drawer visibility flag. All mutations are atomic
// with respect to each other and to Snapshot; the HTTP server calls in
// from many goroutines, so a mutex serializes them.
//
// Operations never fail: unknown item ids are absorbed as no-ops because
// every id a caller can hold was issued by this engine.
type Engine struct {
	mu     sync.Mutex
	items  []domain.LineItem
	isOpen bool
}

// New returns an empty cart with the drawer closed.
func New() *Engine {
	return &Engine{}
}

// Add puts quantity units of product into the cart. If a line item with
// the same merge key (product id + identical variant selection) already
// exists, its quantity is increased; otherwise a new line item is
// appended. quantity values < 1 are treated as 1. Stock limits are not
// enforced here; that is a presentation concern.
func (e *Engine) Add(product domain.Product, quantity int, selectedVariants map[string]string) domain.LineItem {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].Product.ID == product.ID && variantsEqual(e.items[i].SelectedVariants, selectedVariants) {
			e.items[i].Quantity += quantity
			return e.items[i]
		}
	}

	item := domain.LineItem{
		ID:               uuid.NewString(),
		Product:          product,
		Quantity:         quantity,
		SelectedVariants: copyVariants(selectedVariants),
	}
	e.items = append(e.items, item)
	return item
}

// Remove deletes the line item with the given id. Unknown ids are a no-op.
func (e *Engine) Remove(itemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(itemID)
}

// UpdateQuantity overwrites the quantity of the line item with the given
// id. A quantity <= 0 removes the item. Unknown ids are a no-op.
func (e *Engine) UpdateQuantity(itemID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLocked(itemID)
		return
	}
	for i := range e.items {
		if e.items[i].ID == itemID {
			e.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. The drawer flag is untouched.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Open shows the cart drawer.
func (e *Engine) Open() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.isOpen = true
}

// Close hides the cart drawer. Items are kept.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.isOpen = false
}

// Toggle flips the cart drawer visibility and returns the new state.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.isOpen = !e.isOpen
	return e.isOpen
}

// Snapshot returns a consistent read view of the cart: a copy of the
// line items, totals derived from them, and the drawer flag. The copy
// means callers can never observe a later mutation.
func (e *Engine) Snapshot() domain.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]domain.LineItem, len(e.items))
	copy(items, e.items)
	return domain.Cart{
		Items:  items,
		Totals: ComputeTotals(items),
		IsOpen: e.isOpen,
	}
}

func (e *Engine) removeLocked(itemID string) {
	for i := range e.items {
		if e.items[i].ID == itemID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// ComputeTotals derives the monetary fields from a set of line items.
// Pure function: totals are always recomputed from scratch so they can
// never go stale against the items they describe.
func ComputeTotals(items []domain.LineItem) domain.Totals {
	var t domain.Totals
	for _, item := range items {
		t.Subtotal += item.Product.Price * float64(item.Quantity)
		t.ItemCount += item.Quantity
	}
	if t.Subtotal < FreeShippingThreshold {
		t.Shipping = ShippingCost
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}

// variantsEqual compares two variant selections structurally, order
// independent. A nil map and an empty map are the same selection.
func variantsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func copyVariants(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
