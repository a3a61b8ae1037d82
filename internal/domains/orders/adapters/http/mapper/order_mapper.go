package mapper

import (
	"time"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

// OrderLine represents the transport-layer shape of one order line.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

// Order represents the transport-layer shape of an order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Lines      []OrderLine `json:"lines"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// CreateOrderLineRequest is one requested product/quantity pair.
type CreateOrderLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the payload accepted when placing an order.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customerId" binding:"required"`
	Lines      []CreateOrderLineRequest `json:"lines" binding:"required"`
}

// ToCreateInput converts a transport request into the application input.
func ToCreateInput(req CreateOrderRequest, idempotencyKey string) ordersports.CreateOrderInput {
	input := ordersports.CreateOrderInput{
		CustomerID:     req.CustomerID,
		IdempotencyKey: idempotencyKey,
		Lines:          make([]ordersports.LineInput, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, ordersports.LineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return input
}

// FromDomainList converts a slice of domain orders.
func FromDomainList(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomain(order))
	}
	return result
}

// FromDomain converts a domain order to the transport representation.
func FromDomain(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	result := Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
		Lines:      make([]OrderLine, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		result.Lines = append(result.Lines, OrderLine{
			ProductID: line.ProductID,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	return result
}
