package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrIssueRefundCommandIsNotConstructed = errors.New(
		"IssueRefundCommand must be created via NewIssueRefundCommand constructor",
	)
)

// IssueRefundCommand represents an administrative payout of the full
// order total for an active return.
type IssueRefundCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueRefundCommand creates a command to issue a refund.
func NewIssueRefundCommand(orderID kernel.UUID) (IssueRefundCommand, error) {
	if err := orderID.Validate(); err != nil {
		return IssueRefundCommand{}, err
	}

	return IssueRefundCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueRefundCommand) Validate() error {
	return c.guard.Validate(ErrIssueRefundCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to refund.
func (c IssueRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}
