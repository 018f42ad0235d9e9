package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their owner and lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Implementations must apply the change with optimistic versioning:
	// a stale aggregate version surfaces as a conflict error, never as a
	// silent lost update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUser retrieves all orders owned by the given user,
	// newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order permanently. This is an administrative
	// purge; normal operation never deletes orders.
	Delete(ctx context.Context, id kernel.UUID) error
}
