// Package notifier delivers the notification effects emitted by order
// lifecycle mutations. The slog implementation writes structured log
// records; a production deployment would swap in an email or push
// transport behind the same port.
package notifier

import (
	"context"
	"log/slog"

	"ecommerce/internal/core/domain/model/order"
)

// SlogDispatcher implements ports.NotificationDispatcher on structured logs.
// Dispatch never fails: a notification that cannot be delivered is logged
// and dropped, never allowed to disturb the committed order mutation.
type SlogDispatcher struct {
	logger *slog.Logger
}

// NewSlogDispatcher creates a dispatcher writing to the given logger.
func NewSlogDispatcher(logger *slog.Logger) *SlogDispatcher {
	return &SlogDispatcher{logger: logger.With("component", "notifier")}
}

// Dispatch logs one record per notification.
func (d *SlogDispatcher) Dispatch(ctx context.Context, notifications []order.Notification) {
	for _, notification := range notifications {
		d.logger.InfoContext(ctx, "notification dispatched",
			"kind", notification.Kind.String(),
			"order_id", notification.OrderID.String(),
		)
	}
}
