package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/example/pharmasite/internal/models"
)

// ErrStoreNotConfigured is returned when no database credentials were given.
var ErrStoreNotConfigured = errors.New("catalog: product store is not configured")

// Store reads published product rows ordered by id.
type Store interface {
	ListPublishedProducts(ctx context.Context) ([]models.Product, error)
}

// Loader memoizes the published catalog for the lifetime of the process.
// Concurrent first calls may each hit the store; the last result wins.
type Loader struct {
	store Store

	mu       sync.RWMutex
	products []Product
	loaded   bool
}

// NewLoader builds a Loader. A nil store makes every call fail with
// ErrStoreNotConfigured.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Products returns the cached catalog, loading it on first use.
func (l *Loader) Products(ctx context.Context) ([]Product, error) {
	l.mu.RLock()
	if l.loaded {
		products := l.products
		l.mu.RUnlock()
		return products, nil
	}
	l.mu.RUnlock()

	if l.store == nil {
		return nil, ErrStoreNotConfigured
	}

	rows, err := l.store.ListPublishedProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, FromRecord(row))
	}

	l.mu.Lock()
	l.products = products
	l.loaded = true
	l.mu.Unlock()

	return products, nil
}

// Product looks up a single catalog entry by id.
func (l *Loader) Product(ctx context.Context, id string) (Product, bool, error) {
	products, err := l.Products(ctx)
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// Featured returns the products flagged for the home page.
func (l *Loader) Featured(ctx context.Context) ([]Product, error) {
	products, err := l.Products(ctx)
	if err != nil {
		return nil, err
	}
	featured := []Product{}
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}
