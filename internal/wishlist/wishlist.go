// Package wishlist holds a session's saved-product set. Membership is
// the only state: toggling an id twice returns the set to where it was.
package wishlist

import (
	"sort"
	"sync"
)

// Wishlist is a mutex-guarded set of product ids owned by one session.
// The zero value is not usable; construct with New.
type Wishlist struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// New returns an empty wishlist.
func New() *Wishlist {
	return &Wishlist{ids: make(map[string]struct{})}
}

// Toggle flips membership for productID and returns the new membership.
func (w *Wishlist) Toggle(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.ids[productID]; ok {
		delete(w.ids, productID)
		return false
	}
	w.ids[productID] = struct{}{}
	return true
}

// Contains reports whether productID is wishlisted.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.ids[productID]
	return ok
}

// IDs returns the members sorted, so API responses are deterministic.
func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of wishlisted products.
func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ids)
}
