package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// It reserves stock for every cart position, prices the order against the
// current tariff snapshots, and persists the new order, all within one
// transaction: either every line's stock decrement and the order commit
// together, or nothing does.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, userID, items, address, "card", "pay_abc123")
//
//	notifications, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	dispatcher.Dispatch(ctx, notifications)
type CreateOrderCommandHandler struct {
	uowFactory      UoWFactory
	priceCalculator services.PriceCalculator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning orders, the catalog, and the tariff.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		priceCalculator: services.NewPriceCalculator(),
	}
}

// Handle processes the order placement command.
//
// For each cart position the product row is loaded under an exclusive lock
// and its stock decremented; an insufficient line aborts the transaction, so
// earlier decrements in the same request are rolled back with it. The lines
// carry name and price snapshots taken while the lock was held, making the
// persisted order immutable against later catalog changes.
//
// Returns the notification effects of the committed order, for the caller
// to dispatch.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) ([]order.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}

		if err = p.Reserve(item.Quantity()); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}

		line, err := order.NewLine(p.ID(), p.Name(), p.Price(), item.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	tariffRepo := uow.TariffRepository()
	taxTable, err := tariffRepo.GetTaxTable(ctx)
	if err != nil {
		return nil, err
	}
	shippingConfig, err := tariffRepo.GetShippingConfig(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := h.priceCalculator.Price(
		lines,
		taxTable,
		shippingConfig,
		cmd.Address().State(),
		cmd.Address().PostalCode(),
	)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		lines,
		cmd.Address(),
		quote.Subtotal,
		quote.Tax,
		quote.Shipping,
		cmd.PaymentMethod(),
		cmd.PaymentRef(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder.Notifications(), nil
}
