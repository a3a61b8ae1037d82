package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCustomer   = errors.New("order customer is required")
	ErrNoLines         = errors.New("order requires at least one line")
	ErrInvalidQuantity = errors.New("line quantity must be greater than zero")
	ErrNegativePrice   = errors.New("line price must not be negative")
)

// Line is one product/price/quantity entry within an order. The price is
// captured from the catalog at order time and never re-read afterwards.
type Line struct {
	ProductID string
	Price     float64
	Quantity  int64
}

// NewLine validates and constructs an order line.
func NewLine(productID string, price float64, quantity int64) (Line, error) {
	line := Line{ProductID: strings.TrimSpace(productID), Price: price, Quantity: quantity}
	if err := line.Validate(); err != nil {
		return Line{}, err
	}
	return line, nil
}

// Validate enforces invariants on a line.
func (l Line) Validate() error {
	if l.ProductID == "" {
		return errors.New("line product id is required")
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if l.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Order models the purchase order aggregate. Orders are created once and
// immutable thereafter; there is no update or cancel operation.
type Order struct {
	ID         string
	CustomerID string
	Lines      []Line
	CreatedAt  time.Time
}

// NewOrder validates and constructs a new Order aggregate.
func NewOrder(id, customerID string, lines []Line) (*Order, error) {
	order := &Order{
		ID:         id,
		CustomerID: strings.TrimSpace(customerID),
		Lines:      lines,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return ErrEmptyCustomer
	}
	if len(o.Lines) == 0 {
		return ErrNoLines
	}
	for _, line := range o.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Total sums the captured line prices times quantities.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
