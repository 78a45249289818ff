package store

import (
	"context"
	"errors"

	"storefront-service/internal/catalog"
)

// Predefined errors for catalog loading.
var (
	ErrEmptyCatalog = errors.New("store: catalog source contains no products")
)

// CatalogSource supplies the immutable product dataset at process start.
// The returned catalog is read-only; implementations are never called
// again after startup.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}
