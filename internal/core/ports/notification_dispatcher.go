package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/order"
)

// NotificationDispatcher consumes the effect lists emitted by lifecycle
// mutations. It is called only after the mutation has committed, so a
// dispatch failure can never roll back or block a state change.
type NotificationDispatcher interface {
	// Dispatch hands off the accumulated notifications for delivery.
	// Implementations decide the transport; errors are theirs to handle
	// and must not propagate into order processing.
	Dispatch(ctx context.Context, notifications []order.Notification)
}
