package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// EventPublisher is the message sink for domain events. Implementations
// deliver the event to a broker; callers invoke Publish only after the
// corresponding state change is durable. A publish failure is logged and
// retried by the relay, never rolled back against committed state.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent) error
}
