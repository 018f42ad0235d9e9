package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrUpdateReturnTrackingCommandIsNotConstructed = errors.New(
		"UpdateReturnTrackingCommand must be created via NewUpdateReturnTrackingCommand constructor",
	)
)

// UpdateReturnTrackingCommand represents an administrative update of a
// return's tracking number and/or stage. Both fields are independently
// optional, but at least one must be supplied.
type UpdateReturnTrackingCommand struct {
	orderID        kernel.UUID
	trackingNumber string
	returnStatus   *order.ReturnStatus

	guard guard.ConstructorGuard
}

// NewUpdateReturnTrackingCommand creates a command to record return
// shipment progress.
func NewUpdateReturnTrackingCommand(
	orderID kernel.UUID,
	trackingNumber string,
	returnStatus *order.ReturnStatus,
) (UpdateReturnTrackingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateReturnTrackingCommand{}, err
	}
	if trackingNumber == "" && returnStatus == nil {
		return UpdateReturnTrackingCommand{}, errs.NewValueIsRequiredError(
			"return status or tracking number")
	}
	if returnStatus != nil {
		if err := returnStatus.Validate(); err != nil {
			return UpdateReturnTrackingCommand{}, err
		}
	}

	return UpdateReturnTrackingCommand{
		orderID:        orderID,
		trackingNumber: trackingNumber,
		returnStatus:   returnStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnTrackingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnTrackingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose return is updated.
func (c UpdateReturnTrackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the return tracking number, empty when not supplied.
func (c UpdateReturnTrackingCommand) TrackingNumber() string {
	return c.trackingNumber
}

// ReturnStatus returns the requested return stage, nil when not supplied.
func (c UpdateReturnTrackingCommand) ReturnStatus() *order.ReturnStatus {
	return c.returnStatus
}
