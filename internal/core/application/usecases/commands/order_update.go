package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
)

// maxConflictAttempts bounds the internal retry of an order mutation that
// lost an optimistic-versioning race. Conflicts are the only error kind
// retried here; everything else propagates immediately.
const maxConflictAttempts = 3

// executeOrderUpdate runs a read-modify-write cycle on one order inside a
// fresh transaction, retrying on version conflicts. The mutate callback
// receives the freshly loaded aggregate on every attempt, so its changes
// are always applied to current state.
//
// Returns the notifications accumulated by the mutation of the attempt
// that committed.
func executeOrderUpdate(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) ([]order.Notification, error) {
	var lastErr error

	for attempt := 0; attempt < maxConflictAttempts; attempt++ {
		notifications, err := attemptOrderUpdate(ctx, uowFactory.Create(), orderID, mutate)
		if err == nil {
			return notifications, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func attemptOrderUpdate(
	ctx context.Context,
	uow OrderUoW,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) ([]order.Notification, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate.Notifications(), nil
}
