package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrRestockProductCommandIsNotConstructed = errors.New(
		"RestockProductCommand must be created via NewRestockProductCommand constructor",
	)
)

// RestockProductCommand represents an administrative stock replenishment
// for a catalog product.
type RestockProductCommand struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to add stock to a product.
// The quantity must be positive.
func NewRestockProductCommand(productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return RestockProductCommand{}, err
	}
	if quantity <= 0 {
		return RestockProductCommand{}, errs.NewValueIsInvalidError("quantity")
	}

	return RestockProductCommand{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to restock.
func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the amount of stock to add.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}
