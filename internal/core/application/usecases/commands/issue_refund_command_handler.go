package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/order"
)

// IssueRefundCommandHandler handles the payout of a return refund.
// The refund always covers the full order total and can be issued at
// most once; both rules are enforced by the aggregate.
type IssueRefundCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewIssueRefundCommandHandler creates a handler for refund payouts.
func NewIssueRefundCommandHandler(uowFactory OrderUoWFactory) IssueRefundCommandHandler {
	return IssueRefundCommandHandler{uowFactory: uowFactory}
}

// Handle issues the refund for the order's active return.
// Returns the notification effects of the committed refund.
func (h *IssueRefundCommandHandler) Handle(
	ctx context.Context,
	cmd IssueRefundCommand,
) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return executeOrderUpdate(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.IssueRefund(time.Now().UTC())
	})
}
