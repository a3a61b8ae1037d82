package application

import (
	"errors"
	"fmt"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomer) ||
		errors.Is(err, domain.ErrNoLines) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrNegativePrice) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
