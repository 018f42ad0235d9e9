package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles administrative order updates.
//
// A tracking number is classified before it is stored. When the update
// cancels a still-pending order, the stock reserved for its lines is
// restored in the same transaction; cancelling a processing order does
// not restock, matching the single release guarantee of reservation.
//
// The transition policy is fixed at construction: strict enforcement of
// the status graph is the default, lax acceptance exists for
// compatibility with tooling that sets statuses freely.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderProductUoWFactory
	classifier services.CarrierClassifier
	policy     order.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for administrative
// order updates with the given transition policy.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderProductUoWFactory,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		classifier: services.NewCarrierClassifier(),
		policy:     policy,
	}
}

// Handle processes the order update command, retrying internally when it
// loses an optimistic-versioning race. Returns the notification effects
// of the committed update for the caller to dispatch.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	carrier := ""
	if cmd.TrackingNumber() != "" {
		carrier = h.classifier.Classify(cmd.TrackingNumber())
	}

	var lastErr error
	for attempt := 0; attempt < maxConflictAttempts; attempt++ {
		notifications, err := h.attempt(ctx, cmd, carrier)
		if err == nil {
			return notifications, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *UpdateOrderStatusCommandHandler) attempt(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
	carrier string,
) ([]order.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	restock := aggregate.Status() == order.Pending &&
		cmd.Status() != nil && *cmd.Status() == order.Cancelled

	if err = aggregate.ChangeStatus(
		cmd.Status(),
		cmd.PaymentStatus(),
		cmd.TrackingNumber(),
		carrier,
		h.policy,
	); err != nil {
		return nil, err
	}

	if restock {
		if err = h.releaseStock(ctx, uow, aggregate); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate.Notifications(), nil
}

func (h *UpdateOrderStatusCommandHandler) releaseStock(
	ctx context.Context,
	uow OrderProductUoW,
	aggregate *order.Order,
) error {
	productRepo := uow.ProductRepository()
	for _, line := range aggregate.Lines() {
		p, err := productRepo.GetForUpdate(ctx, line.ProductID())
		if err != nil {
			return err
		}

		if err = p.Release(line.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
