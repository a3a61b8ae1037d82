package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
	"github.com/orderstack/commerce-api/internal/domains/products/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct adds a catalog item, refusing duplicate names.
func (s *Service) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(uuid.NewString(), input.Name, input.Price, input.Quantity)
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := s.repo.FindByName(ctx, product.Name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
