package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
)

// UpdateReturnTrackingCommandHandler handles administrative updates of a
// return's shipment progress. A supplied tracking number is classified
// before it is stored.
type UpdateReturnTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	classifier services.CarrierClassifier
}

// NewUpdateReturnTrackingCommandHandler creates a handler for return
// tracking updates.
func NewUpdateReturnTrackingCommandHandler(uowFactory OrderUoWFactory) UpdateReturnTrackingCommandHandler {
	return UpdateReturnTrackingCommandHandler{
		uowFactory: uowFactory,
		classifier: services.NewCarrierClassifier(),
	}
}

// Handle records the return shipment progress.
// Returns the notification effects of the committed update.
func (h *UpdateReturnTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateReturnTrackingCommand,
) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	carrier := ""
	if cmd.TrackingNumber() != "" {
		carrier = h.classifier.Classify(cmd.TrackingNumber())
	}

	return executeOrderUpdate(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateReturnTracking(cmd.TrackingNumber(), carrier, cmd.ReturnStatus())
	})
}
