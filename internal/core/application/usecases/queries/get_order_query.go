// Package queries contains the read side of the application layer. Query
// handlers bypass the domain model and read projections straight from the
// database, returning plain response structs.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a full order snapshot by identifier, line items
// included.
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.OrderID { return q.orderID }

// OrderItemResponse is one line item of an order snapshot.
type OrderItemResponse struct {
	ProductID   kernel.ProductID
	Quantity    int
	Name        string
	Description string
	UnitPrice   float64
	Total       float64
}

// GetOrderQueryResponse is a read-side order snapshot. Price is derived from
// the line items; it is never stored.
type GetOrderQueryResponse struct {
	ID           kernel.OrderID
	CustomerID   kernel.CustomerID
	OrderDate    time.Time
	DeliveryDate time.Time
	Status       string
	Price        float64
	Version      int64
	Items        []OrderItemResponse
}
