package order

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is a single position of an order. It snapshots the product name
// and unit price at the time the order was accepted, so historical
// orders stay immutable even when the catalog changes later.
//
// Line is a value object owned exclusively by its Order. It is created
// once at order-creation time and never mutated afterward.
type Line struct {
	// productID references the catalog product the line was built from
	productID kernel.UUID

	// productName is the product name at order time
	productName string

	// unitPrice is the product price at order time
	unitPrice kernel.Money

	// quantity is the ordered amount (must be positive)
	quantity int

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a validated order line snapshot.
//
// Parameters:
//   - productID: catalog product the line refers to (must be a valid UUID)
//   - productName: product name captured at order time (required)
//   - unitPrice: unit price captured at order time
//   - quantity: ordered amount (must be positive)
//
// Returns:
//   - Line: the created line if all validations pass
//   - error: validation error if any parameter is invalid
func NewLine(productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setProductName(productName),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced catalog product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name snapshot taken at order time.
func (l Line) ProductName() string {
	return l.productName
}

// UnitPrice returns the unit price snapshot taken at order time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered amount.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	l.productName = productName
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
