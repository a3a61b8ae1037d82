package ports

import (
	"context"

	"github.com/orderstack/commerce-api/internal/domains/customers/domain"
)

// CreateCustomerInput carries the fields accepted when registering a customer.
type CreateCustomerInput struct {
	Name  string
	Email string
}

// Service exposes customer use cases to adapters.
type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
