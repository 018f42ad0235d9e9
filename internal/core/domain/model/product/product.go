package product

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the catalog aggregate: a sellable item with a unit price and an
// available stock count.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Stock is never negative
//   - Stock changes only through Reserve, Release, and Restock
//   - Can only be created through NewProduct or RestoreProduct
//
// Reserve is the check-then-decrement half of inventory reservation; callers must
// serialize it per product (the repository loads the row under an exclusive lock).
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money
	stock int

	isConstructed bool
}

// NewProduct creates a new Product with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required; also snapshotted onto order lines)
//   - price: unit price (non-negative fixed-point amount)
//   - stock: initial available stock (must not be negative)
//
// Returns the created product, or a validation error.
func NewProduct(id kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The same validation rules as NewProduct apply.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, price, stock)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the currently available stock.
func (p *Product) Stock() int {
	return p.stock
}

// Reserve decrements available stock by quantity.
//
// Returns InsufficientStockError if the requested quantity exceeds the available
// stock; the product is left unmodified in that case. The caller must hold the
// product row exclusively for the duration of the check-then-decrement.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.name, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Release returns previously reserved stock, used when an order is cancelled
// before shipment. The lifecycle layer guarantees at most one release per order.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// Restock adds new inventory, an administrative catalog operation.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// ChangePrice sets a new unit price. Existing order lines keep their snapshot of
// the old price.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
