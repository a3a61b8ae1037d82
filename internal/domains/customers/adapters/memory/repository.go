package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/orderstack/commerce-api/internal/domains/customers/domain"
	"github.com/orderstack/commerce-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory customer persistence adapter.
type Repository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewRepository() *Repository {
	return &Repository{customers: map[string]*domain.Customer{}}
}

func (r *Repository) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	clone := *customer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, customer := range r.customers {
		if customer.Email == email {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		clone := *customer
		list = append(list, &clone)
	}
	return list, nil
}
