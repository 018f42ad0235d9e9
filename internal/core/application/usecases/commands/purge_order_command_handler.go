package commands

import (
	"context"
)

// PurgeOrderCommandHandler handles administrative order deletion.
// The order's lines are removed with it; reserved stock is not restored,
// matching the append-only contract of normal operation.
type PurgeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrderCommandHandler creates a handler for order purges.
func NewPurgeOrderCommandHandler(uowFactory OrderUoWFactory) PurgeOrderCommandHandler {
	return PurgeOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order permanently.
func (h *PurgeOrderCommandHandler) Handle(ctx context.Context, cmd PurgeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
