package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItem constructor",
	)
)

// OrderItem is one requested cart position: which product and how many.
type OrderItem struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a validated cart position.
// The product ID must be valid and the quantity positive.
func NewOrderItem(productID kernel.UUID, quantity int) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return OrderItem{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the referenced catalog product's identifier.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested amount.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a request to place a new order: the cart,
// the shipping address, and the already-authorized payment details.
//
// Example:
//
//	item, _ := NewOrderItem(productID, 2)
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), userID, []OrderItem{item}, address, "card", "pay_abc123",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	notifications, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	items         []OrderItem
	address       kernel.Address
	paymentMethod string
	paymentRef    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, a non-empty cart, a constructed address, and the
// payment details. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []OrderItem,
	address kernel.Address,
	paymentMethod string,
	paymentRef string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setAddress(address),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setPaymentRef(paymentRef),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested cart positions, in cart order.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Address returns the shipping destination.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

// PaymentMethod returns the payment method tag.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PaymentRef returns the opaque payment reference.
func (c CreateOrderCommand) PaymentRef() string {
	return c.paymentRef
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setPaymentRef(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}

	c.paymentRef = paymentRef
	return nil
}
