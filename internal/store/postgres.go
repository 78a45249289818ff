package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"storefront-service/internal/catalog"
	"storefront-service/internal/domain"
)

// PostgresSource loads the catalog from a PostgreSQL database. The load
// is read-only and happens once at startup; this service never writes
// to the catalog tables.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource creates a PostgresSource over an open connection.
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Close closes the underlying connection. Call after LoadCatalog; the
// source is not needed once the catalog is in memory.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// LoadCatalog reads categories, products and reviews in that order so
// product rows can be joined to their already-loaded categories.
func (s *PostgresSource) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	categories, byID, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.loadProducts(ctx, byID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	reviews, err := s.loadReviews(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(products, categories, reviews), nil
}

func (s *PostgresSource) loadCategories(ctx context.Context) ([]domain.Category, map[string]domain.Category, error) {
	query := `
		SELECT id, name, slug, COALESCE(description, '')
		FROM storefront.categories
		ORDER BY name ASC;
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("store: loadCategories query failed: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	byID := make(map[string]domain.Category)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, nil, fmt.Errorf("store: loadCategories failed to scan row: %w", err)
		}
		categories = append(categories, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("store: loadCategories row iteration failed: %w", err)
	}
	return categories, byID, nil
}

func (s *PostgresSource) loadProducts(ctx context.Context, categories map[string]domain.Category) ([]domain.Product, error) {
	query := `
		SELECT id, name, slug, description, COALESCE(short_description, ''),
		       price, compare_at_price, currency, category_id, tags,
		       rating, review_count, in_stock, stock_count, sku,
		       images, variants, is_featured, is_new, is_best_seller, created_at
		FROM storefront.products
		ORDER BY created_at ASC;
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: loadProducts query failed: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			p           domain.Product
			categoryID  string
			imagesJSON  []byte
			variantJSON []byte
		)
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
			&p.Price, &p.CompareAtPrice, &p.Currency, &categoryID, pq.Array(&p.Tags),
			&p.Rating, &p.ReviewCount, &p.InStock, &p.StockCount, &p.SKU,
			&imagesJSON, &variantJSON, &p.IsFeatured, &p.IsNew, &p.IsBestSeller, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("store: loadProducts failed to scan row: %w", err)
		}
		p.Category = categories[categoryID]
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
				return nil, fmt.Errorf("store: loadProducts bad images JSON for product %s: %w", p.ID, err)
			}
		}
		if len(variantJSON) > 0 {
			if err := json.Unmarshal(variantJSON, &p.Variants); err != nil {
				return nil, fmt.Errorf("store: loadProducts bad variants JSON for product %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: loadProducts row iteration failed: %w", err)
	}
	return products, nil
}

func (s *PostgresSource) loadReviews(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, product_id, user_name, rating, title, body, verified, helpful, created_at
		FROM storefront.reviews
		ORDER BY created_at DESC;
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: loadReviews query failed: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		err := rows.Scan(&r.ID, &r.ProductID, &r.UserName, &r.Rating, &r.Title, &r.Body, &r.Verified, &r.Helpful, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("store: loadReviews failed to scan row: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: loadReviews row iteration failed: %w", err)
	}
	return reviews, nil
}
