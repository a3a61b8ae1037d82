package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}, now: time.Now}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[clone.ID]; exists {
		return nil, errors.New("order id already exists")
	}
	clone.CreatedAt = r.now()
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Lines = make([]domain.Line, len(order.Lines))
	copy(clone.Lines, order.Lines)
	return &clone
}
