package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/order"
)

// RequestReturnCommandHandler handles customer return requests.
// Ownership and delivery-state checks happen inside the aggregate; the
// handler only provides the transaction and conflict retry.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{uowFactory: uowFactory}
}

// Handle opens a return for the order on behalf of the requester.
// Returns the notification effects of the committed request.
func (h *RequestReturnCommandHandler) Handle(
	ctx context.Context,
	cmd RequestReturnCommand,
) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return executeOrderUpdate(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.RequestReturn(cmd.RequesterID(), time.Now().UTC())
	})
}
