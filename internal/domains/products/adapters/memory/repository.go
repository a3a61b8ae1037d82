package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
	"github.com/orderstack/commerce-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) FindByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, product := range r.products {
		if product.Name == name {
			clone := *product
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) FindAllByID(_ context.Context, ids []string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]struct{}{}
	found := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.products[id]; ok {
			clone := *product
			found = append(found, &clone)
		}
	}
	return found, nil
}

// UpdateQuantity applies all decrements or none: every product is checked
// before the first stock mutation.
func (r *Repository) UpdateQuantity(_ context.Context, updates []ports.QuantityUpdate) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, update := range updates {
		product, ok := r.products[update.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, update.ProductID)
		}
		if !product.HasStock(update.Quantity) {
			return nil, fmt.Errorf("%w: %s", ports.ErrStockExhausted, update.ProductID)
		}
	}
	updated := make([]*domain.Product, 0, len(updates))
	for _, update := range updates {
		product := r.products[update.ProductID]
		if err := product.Decrement(update.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %s", ports.ErrStockExhausted, update.ProductID)
		}
		clone := *product
		updated = append(updated, &clone)
	}
	return updated, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	return list, nil
}
