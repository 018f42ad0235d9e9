package commands

import (
	"context"
)

// RestockProductCommandHandler handles stock replenishment. The product
// row is locked for the update so the increment serializes with
// concurrent reservations.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for stock replenishment.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{uowFactory: uowFactory}
}

// Handle adds the requested quantity to the product's stock.
func (h *RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
