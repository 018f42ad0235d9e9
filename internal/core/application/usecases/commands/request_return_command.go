package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrRequestReturnCommandIsNotConstructed = errors.New(
		"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
	)
)

// RequestReturnCommand represents a customer's request to return a
// delivered order. The requester must own the order.
//
// Example:
//
//	cmd, err := NewRequestReturnCommand(orderID, userID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRequestReturnCommandHandler(uowFactory)
//	notifications, err := handler.Handle(ctx, cmd)
type RequestReturnCommand struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a command to open a return.
// Both identifiers must be valid UUIDs.
func NewRequestReturnCommand(orderID, requesterID kernel.UUID) (RequestReturnCommand, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to return.
func (c RequestReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the customer making the request.
func (c RequestReturnCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
