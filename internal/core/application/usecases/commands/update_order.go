package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// maxConflictRetries bounds the optimistic retry loop. Orders are
// low-contention entities, so a handful of attempts is enough; after that
// the conflict is surfaced to the caller.
const maxConflictRetries = 3

// updateOrder runs one load-mutate-save cycle against the given order,
// retrying the whole cycle on optimistic concurrency conflicts. The mutation
// is applied through the aggregate, recorded events are staged in the outbox
// within the same transaction, and the events are published only after the
// commit is durable (by the outbox relay).
func updateOrder(
	ctx context.Context,
	uowFactory UoWFactory,
	orderID kernel.OrderID,
	mutate func(*order.Order) error,
) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = runUpdate(ctx, uowFactory, orderID, mutate)
		if err == nil || !errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}
	}
	return err
}

func runUpdate(
	ctx context.Context,
	uowFactory UoWFactory,
	orderID kernel.OrderID,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	if events := aggregate.Events(); len(events) > 0 {
		if err = uow.OutboxRepository().Add(ctx, aggregate.ID().String(), events); err != nil {
			return err
		}
		aggregate.ClearEvents()
	}

	return uow.Commit(ctx)
}
