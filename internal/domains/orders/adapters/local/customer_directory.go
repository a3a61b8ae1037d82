// Package local adapts the sibling bounded contexts to the narrow
// collaborator interfaces the order workflow consumes.
package local

import (
	"context"
	"errors"

	customersports "github.com/orderstack/commerce-api/internal/domains/customers/ports"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

var _ ports.CustomerDirectory = (*CustomerDirectory)(nil)

// CustomerDirectory resolves customers through the customers repository.
type CustomerDirectory struct {
	repo customersports.Repository
}

func NewCustomerDirectory(repo customersports.Repository) *CustomerDirectory {
	return &CustomerDirectory{repo: repo}
}

// FindByID translates the customers context's absence into the workflow's
// ErrCustomerNotFound.
func (d *CustomerDirectory) FindByID(ctx context.Context, id string) (*ports.CustomerRef, error) {
	customer, err := d.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customersports.ErrNotFound) {
			return nil, ports.ErrCustomerNotFound
		}
		return nil, err
	}
	return &ports.CustomerRef{ID: customer.ID, Name: customer.Name, Email: customer.Email}, nil
}
