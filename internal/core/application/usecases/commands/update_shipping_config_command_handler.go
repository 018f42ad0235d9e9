package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/tariff"
)

// UpdateShippingConfigCommandHandler handles shipping tariff changes.
// Orders already being priced keep the snapshot they loaded; the new
// tariff applies from the next pricing call on.
type UpdateShippingConfigCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewUpdateShippingConfigCommandHandler creates a handler for shipping
// tariff changes.
func NewUpdateShippingConfigCommandHandler(uowFactory TariffUoWFactory) UpdateShippingConfigCommandHandler {
	return UpdateShippingConfigCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new shipping tariff.
func (h *UpdateShippingConfigCommandHandler) Handle(ctx context.Context, cmd UpdateShippingConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	config, err := tariff.NewShippingConfig(cmd.Cost(), cmd.FreeShippingThreshold())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TariffRepository().SaveShippingConfig(ctx, config); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
