package commands

import (
	"context"
)

// UpdateTaxTableCommandHandler handles tax table replacements.
type UpdateTaxTableCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewUpdateTaxTableCommandHandler creates a handler for tax table replacements.
func NewUpdateTaxTableCommandHandler(uowFactory TariffUoWFactory) UpdateTaxTableCommandHandler {
	return UpdateTaxTableCommandHandler{uowFactory: uowFactory}
}

// Handle stores the replacement tax table.
func (h *UpdateTaxTableCommandHandler) Handle(ctx context.Context, cmd UpdateTaxTableCommand) error {
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

	if err := uow.TariffRepository().SaveTaxTable(ctx, cmd.Table()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
