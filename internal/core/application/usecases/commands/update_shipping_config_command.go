package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrUpdateShippingConfigCommandIsNotConstructed = errors.New(
		"UpdateShippingConfigCommand must be created via NewUpdateShippingConfigCommand constructor",
	)
)

// UpdateShippingConfigCommand represents an administrative change of the
// shipping tariff: the flat fee and the free-shipping threshold.
type UpdateShippingConfigCommand struct {
	cost                  kernel.Money
	freeShippingThreshold kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateShippingConfigCommand creates a command to replace the
// shipping tariff. Money values cannot be negative by construction.
func NewUpdateShippingConfigCommand(cost, freeShippingThreshold kernel.Money) (UpdateShippingConfigCommand, error) {
	return UpdateShippingConfigCommand{
		cost:                  cost,
		freeShippingThreshold: freeShippingThreshold,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShippingConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippingConfigCommandIsNotConstructed)
}

// Cost returns the new flat shipping fee.
func (c UpdateShippingConfigCommand) Cost() kernel.Money {
	return c.cost
}

// FreeShippingThreshold returns the new free-shipping threshold.
func (c UpdateShippingConfigCommand) FreeShippingThreshold() kernel.Money {
	return c.freeShippingThreshold
}
