package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrPurgeOrderCommandIsNotConstructed = errors.New(
		"PurgeOrderCommand must be created via NewPurgeOrderCommand constructor",
	)
)

// PurgeOrderCommand represents the administrative physical deletion of an
// order. Normal operation is append-only; this exists for data hygiene
// (test data, legal erasure requests) and nothing else.
type PurgeOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPurgeOrderCommand creates a command to purge an order.
func NewPurgeOrderCommand(orderID kernel.UUID) (PurgeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PurgeOrderCommand{}, err
	}

	return PurgeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrderCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to purge.
func (c PurgeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
