package order

import "ecommerce/internal/core/domain/model/kernel"

// NotificationKind identifies which message a lifecycle change calls for.
type NotificationKind int

const (
	// NotificationUnknown represents an invalid or undefined kind.
	NotificationUnknown NotificationKind = iota

	// CustomerOrderConfirmed asks for an order confirmation to the customer.
	CustomerOrderConfirmed

	// AdminNewOrderAlert asks for a new-order alert to the store staff.
	AdminNewOrderAlert

	// CustomerOrderStatusUpdated asks for a status-change notice to the customer.
	CustomerOrderStatusUpdated

	// CustomerReturnConfirmed asks for a return confirmation to the customer.
	CustomerReturnConfirmed

	// AdminNewReturnAlert asks for a new-return alert to the store staff.
	AdminNewReturnAlert

	// CustomerReturnLabelSent asks for the return shipping label to be sent
	// to the customer.
	CustomerReturnLabelSent

	// CustomerReturnCancelled asks for a return-cancellation notice to the customer.
	CustomerReturnCancelled

	// AdminReturnCancelledAlert asks for a return-cancellation alert to the store staff.
	AdminReturnCancelledAlert

	// CustomerRefundIssued asks for a refund confirmation to the customer.
	CustomerRefundIssued

	// AdminReturnReminder asks for a reminder about a stalled return.
	AdminReturnReminder
)

func getNotificationKindStrings() map[NotificationKind]string {
	return map[NotificationKind]string{
		NotificationUnknown:        "Unknown",
		CustomerOrderConfirmed:     "CustomerOrderConfirmed",
		AdminNewOrderAlert:         "AdminNewOrderAlert",
		CustomerOrderStatusUpdated: "CustomerOrderStatusUpdated",
		CustomerReturnConfirmed:    "CustomerReturnConfirmed",
		AdminNewReturnAlert:        "AdminNewReturnAlert",
		CustomerReturnLabelSent:    "CustomerReturnLabelSent",
		CustomerReturnCancelled:    "CustomerReturnCancelled",
		AdminReturnCancelledAlert:  "AdminReturnCancelledAlert",
		CustomerRefundIssued:       "CustomerRefundIssued",
		AdminReturnReminder:        "AdminReturnReminder",
	}
}

// String returns the name of the notification kind.
func (k NotificationKind) String() string {
	if str, ok := getNotificationKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Notification is a request to send a message, emitted by a lifecycle
// mutation as data. The order aggregate never sends anything itself:
// the caller collects the accumulated notifications after a successful
// commit and hands them to a dispatcher, so that a delivery failure can
// never roll back a committed state change.
type Notification struct {
	Kind    NotificationKind
	OrderID kernel.UUID
}
