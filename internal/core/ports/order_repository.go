// Package ports defines the persistence and messaging contracts between the
// domain core and infrastructure adapters. The interfaces enable dependency
// inversion: the orchestration layer depends on these abstractions, never on
// a storage engine or broker directly.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. The
// whole aggregate is the unit of persistence; there are no partial-field
// update semantics at this layer.
type OrderRepository interface {
	// Get retrieves an order by its identifier. A missing id yields an
	// ObjectNotFoundError (absence, not a fault).
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByIDs retrieves the orders matching the given identifiers. Missing
	// ids are silently skipped; the result may be shorter than the input.
	GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error)

	// GetAll retrieves every persisted order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Save upserts the aggregate: inserts when no record exists, otherwise
	// replaces the stored state wholesale. Save fails with a
	// ConcurrentModificationError when the stored version no longer matches
	// the version the aggregate was loaded with. On success the aggregate's
	// version is advanced.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes the whole aggregate. Deleting a missing id yields an
	// ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.OrderID) error
}
