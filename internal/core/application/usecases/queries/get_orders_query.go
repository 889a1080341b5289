package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order snapshots, optionally filtered by status.
type GetOrdersQuery struct {
	status    order.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasFilter
}
