// Package commands contains the business operations that modify system
// state. Implements the Command pattern for write operations: every command
// is a validated object, every handler manages its own transaction, and
// domain events are staged in the outbox atomically with the state change.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across the order
// aggregate and the event outbox.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a
	// transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// UoW manages transactions spanning the order aggregate and the event
	// outbox. Every command handler works through a UoW so a state change
	// and its staged events commit or roll back together.
	UoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// UoWFactory creates a fresh unit of work per command execution.
	UoWFactory interface {
		Create() UoW
	}
)
