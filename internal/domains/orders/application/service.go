package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

// Service orchestrates the order-creation workflow against its three
// collaborators: a customer directory, a product catalog, and the order
// repository.
type Service struct {
	repo        ports.Repository
	customers   ports.CustomerDirectory
	catalog     ports.ProductCatalog
	idempotency ports.IdempotencyStore
}

type Option func(*Service)

// WithIdempotencyStore enables replay-safe creation for requests that carry
// an idempotency key.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

func NewService(repo ports.Repository, customers ports.CustomerDirectory, catalog ports.ProductCatalog, opts ...Option) *Service {
	s := &Service{repo: repo, customers: customers, catalog: catalog}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateOrder validates the request, consumes stock, and persists the order.
//
// Failure conditions are surfaced verbatim and fail fast:
// ErrDuplicateProduct, ErrCustomerNotFound, ErrProductNotFound,
// ErrOutOfStock. The stock check succeeds when available stock is greater
// than or equal to the requested quantity and fails only when it is
// strictly less.
//
// The stock decrement happens before the order insert; there is no
// compensating rollback if the insert fails. The catalog's bulk update is
// itself atomic, so a partial decrement is never observed.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := rejectDuplicateLines(input.Lines); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	var fingerprint string
	if key != "" && s.idempotency != nil {
		var err error
		fingerprint, err = FingerprintCreateOrder(input)
		if err != nil {
			return nil, err
		}
		if replay, err := s.replayOrder(ctx, key, fingerprint); err != nil || replay != nil {
			return replay, err
		}
	}

	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.ProductID)
	}
	found, err := s.catalog.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(input.Lines) {
		return nil, ports.ErrProductNotFound
	}

	byID := make(map[string]ports.CatalogProduct, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	lines := make([]domain.Line, 0, len(input.Lines))
	updates := make([]ports.QuantityUpdate, 0, len(input.Lines))
	for _, requested := range input.Lines {
		product, ok := byID[requested.ProductID]
		if !ok {
			// Unreachable after the count check, kept as a guard.
			return nil, ports.ErrProductNotFound
		}
		if product.Quantity < requested.Quantity {
			return nil, fmt.Errorf("%w: %s", ports.ErrOutOfStock, product.ID)
		}
		line, err := domain.NewLine(product.ID, product.Price, requested.Quantity)
		if err != nil {
			return nil, mapError(err)
		}
		lines = append(lines, line)
		updates = append(updates, ports.QuantityUpdate{ProductID: requested.ProductID, Quantity: requested.Quantity})
	}

	if _, err := s.catalog.UpdateQuantity(ctx, updates); err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(uuid.NewString(), customer.ID, lines)
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if key != "" && s.idempotency != nil {
		record := ports.IdempotencyRecord{Key: key, RequestHash: fingerprint, OrderID: created.ID}
		if _, err := s.idempotency.Save(ctx, record); err != nil && !errors.Is(err, ports.ErrIdempotencyConflict) {
			return nil, err
		}
	}
	return created, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// replayOrder returns the previously created order when the key is known and
// the fingerprint matches; a fingerprint mismatch is an idempotency conflict.
func (s *Service) replayOrder(ctx context.Context, key, fingerprint string) (*domain.Order, error) {
	record, err := s.idempotency.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if record.RequestHash != fingerprint {
		return nil, ports.ErrIdempotencyConflict
	}
	return s.repo.GetByID(ctx, record.OrderID)
}

func rejectDuplicateLines(lines []ports.LineInput) error {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.ProductID]; dup {
			return fmt.Errorf("%w: %s", ports.ErrDuplicateProduct, line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
