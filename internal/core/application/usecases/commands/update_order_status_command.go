package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an administrative order update.
// Each field is independently optional; only supplied fields are applied.
//
// Example:
//
//	shipped := order.Shipped
//	cmd, err := NewUpdateOrderStatusCommand(orderID, &shipped, nil, "1Z999AA10123456784")
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, order.StrictTransitions)
//	notifications, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	status         *order.Status
	paymentStatus  *order.PaymentStatus
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's
// status, payment status, and/or forward tracking number. At least one
// field must be supplied; supplied statuses must be valid values.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status *order.Status,
	paymentStatus *order.PaymentStatus,
	trackingNumber string,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if status == nil && paymentStatus == nil && trackingNumber == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError(
			"status, payment status or tracking number")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderStatusCommand{}, err
		}
	}
	if paymentStatus != nil {
		if err := paymentStatus.Validate(); err != nil {
			return UpdateOrderStatusCommand{}, err
		}
	}

	return UpdateOrderStatusCommand{
		orderID:        orderID,
		status:         status,
		paymentStatus:  paymentStatus,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, nil when not supplied.
func (c UpdateOrderStatusCommand) Status() *order.Status {
	return c.status
}

// PaymentStatus returns the requested payment status, nil when not supplied.
func (c UpdateOrderStatusCommand) PaymentStatus() *order.PaymentStatus {
	return c.paymentStatus
}

// TrackingNumber returns the forward tracking number, empty when not supplied.
func (c UpdateOrderStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}
