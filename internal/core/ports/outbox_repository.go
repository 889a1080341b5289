package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OutboxMessage is a staged domain event awaiting publication. Messages are
// written in the same transaction as the state change that produced them,
// guaranteeing the event is never published before the change is durable.
type OutboxMessage struct {
	ID      int64
	EventID string
	// AggregateID keys the message on the broker so events of one order
	// stay ordered.
	AggregateID string
	EventType   string
	Payload     []byte
}

// OutboxRepository stages domain events for at-least-once delivery. A relay
// publishes pending messages after commit and marks them published; publish
// failures are retried on the next pass, never rolled back against the
// already-committed state change.
type OutboxRepository interface {
	// Add stages the given events for the aggregate within the current
	// transaction.
	Add(ctx context.Context, aggregateID string, events []order.DomainEvent) error

	// GetPending returns up to limit unpublished messages in insertion
	// order.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the message reached the broker.
	MarkPublished(ctx context.Context, id int64) error
}
