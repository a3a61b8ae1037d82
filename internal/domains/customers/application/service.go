package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/orderstack/commerce-api/internal/domains/customers/domain"
	"github.com/orderstack/commerce-api/internal/domains/customers/ports"
)

// Service orchestrates customer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateCustomer registers a new customer, refusing duplicate emails.
func (s *Service) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(uuid.NewString(), input.Name, input.Email)
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := s.repo.GetByEmail(ctx, customer.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, customer)
}

func (s *Service) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
