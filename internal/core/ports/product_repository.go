package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an object-not-found error when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and takes an exclusive row lock on
	// it for the duration of the surrounding transaction. Stock
	// reservation uses this so that check-then-decrement is serialized
	// against concurrent reservations of the same product.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
