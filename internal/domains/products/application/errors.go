package application

import (
	"errors"
	"fmt"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid product input")
	// ErrNameTaken signals the catalog already contains the product name.
	ErrNameTaken = errors.New("product name already in catalog")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrNegativeQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
