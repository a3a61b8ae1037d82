package mapper

import (
	customersdomain "github.com/orderstack/commerce-api/internal/domains/customers/domain"
	customersports "github.com/orderstack/commerce-api/internal/domains/customers/ports"
)

// Customer represents the transport-layer shape of a customer.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCustomerRequest is the payload accepted when registering a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ToCreateInput converts a transport request into the application input.
func ToCreateInput(req CreateCustomerRequest) customersports.CreateCustomerInput {
	return customersports.CreateCustomerInput{Name: req.Name, Email: req.Email}
}

// FromDomain converts a domain customer to the transport representation.
func FromDomain(customer *customersdomain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{ID: customer.ID, Name: customer.Name, Email: customer.Email}
}

// FromDomainList converts a slice of domain customers.
func FromDomainList(customers []*customersdomain.Customer) []Customer {
	result := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		result = append(result, FromDomain(customer))
	}
	return result
}
