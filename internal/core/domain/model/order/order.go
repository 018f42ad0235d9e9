package order

import (
	"errors"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// defaultCarrier is stored for orders without a classified tracking number.
const defaultCarrier = "USPS"

// Order is the aggregate root for a customer order. It owns the order
// lines, the priced totals, and the Status/PaymentStatus/ReturnStatus
// triad, and it is the only place where lifecycle transitions happen.
//
// Order follows these invariants:
//   - Total() always equals subtotal + tax + shipping
//   - The subtotal equals the sum of every line's unit price times quantity
//   - Lines and the shipping address are immutable once the order is created
//   - A forward tracking number is set only for shipped or delivered orders
//   - Refund fields are set only when the return status is ReturnRefundIssued
//
// Every mutation accumulates the notification effects it implies; the
// aggregate never dispatches anything itself (see Notification).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the customer who placed the order
	userID kernel.UUID

	// lines are the ordered positions, in insertion order
	lines []Line

	// subtotal, tax and shipping are the priced components; the grand
	// total is derived, never stored
	subtotal kernel.Money
	tax      kernel.Money
	shipping kernel.Money

	// address is the shipping destination, immutable once set
	address kernel.Address

	// status is the current fulfillment state
	status Status

	// paymentStatus is the settlement state reported by the payment collaborator
	paymentStatus PaymentStatus

	// returnStatus tracks an active return; ReturnNone when there is none
	returnStatus ReturnStatus

	// paymentMethod is a tag such as "card" or "paypal"
	paymentMethod string

	// paymentRef is the opaque reference issued by the payment collaborator
	paymentRef string

	// trackingNumber and carrier describe the forward shipment
	trackingNumber string
	carrier        string

	// returnTrackingNumber and returnCarrier describe the return shipment
	returnTrackingNumber string
	returnCarrier        string

	// returnRequestedAt is stamped when a return is requested
	returnRequestedAt *time.Time

	// refundIssuedAt and refundAmount are stamped when the refund is paid out
	refundIssuedAt *time.Time
	refundAmount   *kernel.Money

	// createdAt is stamped once at creation
	createdAt time.Time

	// version supports optimistic concurrency in the repository
	version int

	// notifications accumulates the effects emitted by mutations
	notifications []Notification

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with a completed payment.
//
// The lines must already carry their name and price snapshots (taken while
// stock was reserved), and subtotal/tax/shipping must come from the pricing
// engine for those same lines. The subtotal is cross-checked against the
// lines; a mismatch fails construction.
//
// On success the order has accumulated the order-confirmation notifications
// for the customer and the store staff.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	lines []Line,
	address kernel.Address,
	subtotal kernel.Money,
	tax kernel.Money,
	shipping kernel.Money,
	paymentMethod string,
	paymentRef string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentCompleted,
		returnStatus:  ReturnNone,
		carrier:       defaultCarrier,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setLines(lines),
		order.setAddress(address),
		order.setPaymentMethod(paymentMethod),
		order.setPaymentRef(paymentRef),
		order.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	if err := order.setTotals(subtotal, tax, shipping); err != nil {
		return nil, err
	}

	order.emit(CustomerOrderConfirmed)
	order.emit(AdminNewOrderAlert)

	return order, nil
}

// RestoreOrderParams carries the persisted state of an order.
// Pointer fields are nil when the corresponding event has not happened.
type RestoreOrderParams struct {
	ID                   kernel.UUID
	UserID               kernel.UUID
	Lines                []Line
	Address              kernel.Address
	Subtotal             kernel.Money
	Tax                  kernel.Money
	Shipping             kernel.Money
	Status               Status
	PaymentStatus        PaymentStatus
	ReturnStatus         ReturnStatus
	PaymentMethod        string
	PaymentRef           string
	TrackingNumber       string
	Carrier              string
	ReturnTrackingNumber string
	ReturnCarrier        string
	ReturnRequestedAt    *time.Time
	RefundIssuedAt       *time.Time
	RefundAmount         *kernel.Money
	CreatedAt            time.Time
	Version              int
}

// RestoreOrder reconstructs an Order from persisted state.
//
// It applies the same field validation as NewOrder but accepts any valid
// status combination and leaves the notification list empty: restoring an
// order never re-emits effects.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		trackingNumber:       params.TrackingNumber,
		carrier:              params.Carrier,
		returnTrackingNumber: params.ReturnTrackingNumber,
		returnCarrier:        params.ReturnCarrier,
		returnRequestedAt:    params.ReturnRequestedAt,
		refundIssuedAt:       params.RefundIssuedAt,
		refundAmount:         params.RefundAmount,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setUserID(params.UserID),
		order.setLines(params.Lines),
		order.setAddress(params.Address),
		order.setStatus(params.Status),
		order.setPaymentStatus(params.PaymentStatus),
		order.setReturnStatus(params.ReturnStatus),
		order.setPaymentMethod(params.PaymentMethod),
		order.setPaymentRef(params.PaymentRef),
		order.setCreatedAt(params.CreatedAt),
		order.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	if err := order.setTotals(params.Subtotal, params.Tax, params.Shipping); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Lines returns a copy of the order lines, in insertion order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal returns the sum of all line subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount computed at order time.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Shipping returns the shipping fee computed at order time.
func (o *Order) Shipping() kernel.Money {
	return o.shipping
}

// Total returns subtotal + tax + shipping. It is derived on every call
// so it can never drift from its components.
func (o *Order) Total() kernel.Money {
	return o.subtotal.Add(o.tax).Add(o.shipping)
}

// Address returns the shipping destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ReturnStatus returns the current return status, ReturnNone when the
// order has no active return.
func (o *Order) ReturnStatus() ReturnStatus {
	return o.returnStatus
}

// PaymentMethod returns the payment method tag.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentRef returns the opaque payment reference.
func (o *Order) PaymentRef() string {
	return o.paymentRef
}

// TrackingNumber returns the forward tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// Carrier returns the carrier detected for the forward tracking number.
func (o *Order) Carrier() string {
	return o.carrier
}

// ReturnTrackingNumber returns the return tracking number, empty until set.
func (o *Order) ReturnTrackingNumber() string {
	return o.returnTrackingNumber
}

// ReturnCarrier returns the carrier detected for the return tracking number.
func (o *Order) ReturnCarrier() string {
	return o.returnCarrier
}

// ReturnRequestedAt returns when the return was requested, nil if never.
func (o *Order) ReturnRequestedAt() *time.Time {
	return o.returnRequestedAt
}

// RefundIssuedAt returns when the refund was issued, nil if never.
func (o *Order) RefundIssuedAt() *time.Time {
	return o.refundIssuedAt
}

// RefundAmount returns the refunded amount, nil until a refund is issued.
func (o *Order) RefundAmount() *kernel.Money {
	return o.refundAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// Notifications returns a copy of the effects accumulated by mutations
// since the order was constructed or restored.
func (o *Order) Notifications() []Notification {
	notifications := make([]Notification, len(o.notifications))
	copy(notifications, o.notifications)
	return notifications
}

// ChangeStatus applies an administrative status update. Each parameter is
// independently optional; only supplied fields are applied.
//
// Business rules:
//   - newStatus must be reachable from the current status under the given
//     transition policy
//   - leaving Returned clears all return state; it is rejected once the
//     refund has been issued
//   - a tracking number may only be attached while the order is (becoming)
//     Shipped or Delivered; the caller supplies the classified carrier
//
// Exactly one status-update notification is emitted per successful call.
// Restoring reserved stock on a Pending -> Cancelled transition is the
// caller's responsibility; the aggregate does not touch the catalog.
func (o *Order) ChangeStatus(
	newStatus *Status,
	newPaymentStatus *PaymentStatus,
	trackingNumber string,
	carrier string,
	policy TransitionPolicy,
) error {
	if newStatus == nil && newPaymentStatus == nil && trackingNumber == "" {
		return errs.NewValueIsRequiredError("status, payment status or tracking number")
	}

	if newStatus != nil {
		next, err := o.status.TransitionTo(*newStatus, policy)
		if err != nil {
			return err
		}
		if o.status == Returned && next != Returned {
			if o.returnStatus.IsTerminal() {
				return errs.NewInvalidStateError(
					fmt.Sprintf("transition to %s", next),
					fmt.Sprintf("%s with an issued refund", o.status),
				)
			}
			o.clearReturnState()
		}
		o.status = next
	}

	if newPaymentStatus != nil {
		if err := o.setPaymentStatus(*newPaymentStatus); err != nil {
			return err
		}
	}

	if trackingNumber != "" {
		if o.status != Shipped && o.status != Delivered {
			return errs.NewInvalidStateError("set tracking number", o.status.String())
		}
		o.trackingNumber = trackingNumber
		if carrier != "" {
			o.carrier = carrier
		}
	}

	o.emit(CustomerOrderStatusUpdated)
	return nil
}

// RequestReturn opens a return for the order on behalf of its owner.
//
// Business rules:
//   - only the owning customer may request a return
//   - the order must be Delivered, or already Returned (in which case the
//     request is re-stamped); a refunded return cannot be re-requested
//
// On success the order is Returned with return status ReturnRequested and
// the return-confirmation notifications have been emitted.
func (o *Order) RequestReturn(requesterID kernel.UUID, now time.Time) error {
	if err := o.authorize(requesterID, "request a return for order"); err != nil {
		return err
	}

	if o.status != Delivered && o.status != Returned {
		return errs.NewInvalidStateError("request a return", o.status.String())
	}
	if o.returnStatus.IsTerminal() {
		return errs.NewInvalidStateError("request a return", "Returned with an issued refund")
	}

	o.status = Returned
	o.returnStatus = ReturnRequested
	o.returnRequestedAt = &now

	o.emit(CustomerReturnConfirmed)
	o.emit(AdminNewReturnAlert)
	return nil
}

// CancelReturn withdraws an active return, restoring the order to
// Delivered. The original sale stands: stock is not re-incremented.
//
// Business rules:
//   - only the owning customer may cancel the return
//   - the order must be Returned and the refund must not have been issued
func (o *Order) CancelReturn(requesterID kernel.UUID) error {
	if err := o.authorize(requesterID, "cancel a return for order"); err != nil {
		return err
	}

	if o.status != Returned {
		return errs.NewInvalidStateError("cancel a return", o.status.String())
	}
	if o.returnStatus.IsTerminal() {
		return errs.NewInvalidStateError("cancel a return", "Returned with an issued refund")
	}

	o.status = Delivered
	o.clearReturnState()

	o.emit(CustomerReturnCancelled)
	o.emit(AdminReturnCancelledAlert)
	return nil
}

// UpdateReturnTracking records return shipment progress. Both parameters
// are independently optional; only supplied fields are applied.
//
// Business rules:
//   - the return status is never mutated once the refund has been issued
//   - setting ReturnRefundIssued forces the order status to Returned; it is
//     expected to be paired with IssueRefund by the caller
//   - any other update requires the order to be Returned already
//   - the caller supplies the classified carrier for the tracking number
//
// Moving to ReturnLabelSent emits the return-label notification.
func (o *Order) UpdateReturnTracking(trackingNumber string, carrier string, newReturnStatus *ReturnStatus) error {
	if newReturnStatus == nil && trackingNumber == "" {
		return errs.NewValueIsRequiredError("return status or tracking number")
	}

	if o.returnStatus.IsTerminal() {
		return errs.NewInvalidStateError("update return tracking", "Returned with an issued refund")
	}

	if newReturnStatus != nil {
		if err := newReturnStatus.Validate(); err != nil {
			return err
		}
		if *newReturnStatus == ReturnRefundIssued {
			o.status = Returned
		} else if o.status != Returned {
			return errs.NewInvalidStateError("update return tracking", o.status.String())
		}

		labelJustSent := *newReturnStatus == ReturnLabelSent && o.returnStatus != ReturnLabelSent
		o.returnStatus = *newReturnStatus
		if labelJustSent {
			o.emit(CustomerReturnLabelSent)
		}
	}

	if trackingNumber != "" {
		if o.status != Returned {
			return errs.NewInvalidStateError("set return tracking number", o.status.String())
		}
		o.returnTrackingNumber = trackingNumber
		if carrier != "" {
			o.returnCarrier = carrier
		}
	}

	return nil
}

// IssueRefund pays out the full order total for an active return.
//
// Business rules:
//   - the order must be Returned
//   - a refund can be issued at most once per order
//   - the refund always covers the full total; partial refunds are not modeled
//
// On success the return status is ReturnRefundIssued (terminal), the
// payment status is Refunded, and the refund notification has been emitted.
func (o *Order) IssueRefund(now time.Time) error {
	if o.status != Returned {
		return errs.NewInvalidStateError("issue a refund", o.status.String())
	}
	if o.refundIssuedAt != nil {
		return errs.NewInvalidStateError("issue a refund", "Returned with an issued refund")
	}

	total := o.Total()
	o.returnStatus = ReturnRefundIssued
	o.paymentStatus = PaymentRefunded
	o.refundIssuedAt = &now
	o.refundAmount = &total

	o.emit(CustomerRefundIssued)
	return nil
}

func (o *Order) authorize(requesterID kernel.UUID, action string) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	if !requesterID.IsEqual(o.userID) {
		return errs.NewUnauthorizedError(requesterID.String(), fmt.Sprintf("%s %s", action, o.id))
	}
	return nil
}

func (o *Order) clearReturnState() {
	o.returnStatus = ReturnNone
	o.returnTrackingNumber = ""
	o.returnCarrier = ""
	o.returnRequestedAt = nil
}

func (o *Order) emit(kind NotificationKind) {
	o.notifications = append(o.notifications, Notification{Kind: kind, OrderID: o.id})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setReturnStatus(returnStatus ReturnStatus) error {
	if err := returnStatus.Validate(); err != nil {
		return err
	}
	o.returnStatus = returnStatus
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setPaymentRef(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	o.paymentRef = paymentRef
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}

// setTotals records the priced components, cross-checking the subtotal
// against the line snapshots.
func (o *Order) setTotals(subtotal, tax, shipping kernel.Money) error {
	linesSubtotal := kernel.ZeroMoney()
	for _, line := range o.lines {
		linesSubtotal = linesSubtotal.Add(line.Subtotal())
	}
	if !linesSubtotal.IsEqual(subtotal) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal is invalid",
			fmt.Errorf("subtotal %s does not match the sum of line subtotals %s", subtotal, linesSubtotal))
	}

	o.subtotal = subtotal
	o.tax = tax
	o.shipping = shipping
	return nil
}
