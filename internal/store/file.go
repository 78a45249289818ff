package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"storefront-service/internal/catalog"
	"storefront-service/internal/domain"
)

// catalogFile is the on-disk shape of the JSON seed dataset.
type catalogFile struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Reviews    []domain.Review   `json:"reviews"`
}

// FileSource loads the catalog from a JSON seed file. This is the
// default dataset provider for local development and tests.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadCatalog reads and decodes the seed file.
func (s *FileSource) LoadCatalog(_ context.Context) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store: FileSource failed to read %s: %w", s.path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("store: FileSource failed to decode %s: %w", s.path, err)
	}
	if len(file.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	return catalog.New(file.Products, file.Categories, file.Reviews), nil
}
