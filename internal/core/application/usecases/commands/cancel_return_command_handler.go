package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/order"
)

// CancelReturnCommandHandler handles withdrawal of an active return.
// The order goes back to Delivered; the original sale stands, so no
// stock movement happens here.
type CancelReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelReturnCommandHandler creates a handler for return withdrawals.
func NewCancelReturnCommandHandler(uowFactory OrderUoWFactory) CancelReturnCommandHandler {
	return CancelReturnCommandHandler{uowFactory: uowFactory}
}

// Handle withdraws the return on behalf of the requester.
// Returns the notification effects of the committed withdrawal.
func (h *CancelReturnCommandHandler) Handle(
	ctx context.Context,
	cmd CancelReturnCommand,
) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return executeOrderUpdate(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.CancelReturn(cmd.RequesterID())
	})
}
