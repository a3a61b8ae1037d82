package application

import (
	"errors"
	"fmt"

	"github.com/orderstack/commerce-api/internal/domains/customers/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid customer input")
	// ErrEmailTaken signals another customer already registered the email.
	ErrEmailTaken = errors.New("customer email already registered")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidEmail) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
