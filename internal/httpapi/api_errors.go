package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	customersapp "github.com/orderstack/commerce-api/internal/domains/customers/application"
	customersports "github.com/orderstack/commerce-api/internal/domains/customers/ports"
	ordersapp "github.com/orderstack/commerce-api/internal/domains/orders/application"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
	productsapp "github.com/orderstack/commerce-api/internal/domains/products/application"
	productsports "github.com/orderstack/commerce-api/internal/domains/products/ports"
	apierrors "github.com/orderstack/commerce-api/internal/shared/errors"
)

// responder maps domain and application errors to RFC 7807 responses.
var responder = apierrors.NewChainedResponder("", mapDomainError)

func mapDomainError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersports.ErrCustomerNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrProductNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrOutOfStock):
		return apierrors.NewConflictProblem(err.Error()), true
	case errors.Is(err, ordersports.ErrDuplicateProduct):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrIdempotencyConflict):
		return apierrors.NewConflictProblem(err.Error()), true
	case errors.Is(err, customersapp.ErrEmailTaken),
		errors.Is(err, productsapp.ErrNameTaken):
		return apierrors.NewConflictProblem(err.Error()), true
	case errors.Is(err, customersports.ErrNotFound),
		errors.Is(err, productsports.ErrNotFound),
		errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, customersapp.ErrInvalidInput),
		errors.Is(err, productsapp.ErrInvalidInput),
		errors.Is(err, ordersapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

// respondServiceError renders a service failure as problem+json.
func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

// respondBadRequest renders a malformed-payload failure.
func respondBadRequest(c *gin.Context, err error) {
	responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
