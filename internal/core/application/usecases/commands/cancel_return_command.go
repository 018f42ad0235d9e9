package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrCancelReturnCommandIsNotConstructed = errors.New(
		"CancelReturnCommand must be created via NewCancelReturnCommand constructor",
	)
)

// CancelReturnCommand represents a customer's withdrawal of an active
// return. The requester must own the order.
type CancelReturnCommand struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelReturnCommand creates a command to withdraw a return.
// Both identifiers must be valid UUIDs.
func NewCancelReturnCommand(orderID, requesterID kernel.UUID) (CancelReturnCommand, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return CancelReturnCommand{}, err
	}

	return CancelReturnCommand{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelReturnCommand) Validate() error {
	return c.guard.Validate(ErrCancelReturnCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose return is withdrawn.
func (c CancelReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the customer making the request.
func (c CancelReturnCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
