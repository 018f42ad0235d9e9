package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents an administrative request to add a
// product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	stock     int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The name must be non-empty and the initial stock non-negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}
	productCommand.price = price

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
