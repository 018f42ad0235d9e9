package order

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered <──> Returned
//	   │             │
//	   └─> Cancelled <┘
//
// Returned -> Delivered represents a cancelled return request; the
// original sale stands and stock is not restored by that reversal.
// Cancelled is a final state.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Stock has already been reserved for orders in this status.
	Pending

	// Processing indicates the order has been picked up by fulfillment.
	Processing

	// Shipped indicates the order has left the warehouse.
	// A forward tracking number may only be attached from this point on.
	Shipped

	// Delivered indicates the carrier has confirmed delivery.
	// Delivered orders are eligible for a return request.
	Delivered

	// Cancelled indicates the order was cancelled before shipment.
	// This is a final state with no further transitions allowed.
	Cancelled

	// Returned indicates the customer has an active return for the order.
	// The return itself is tracked by the ReturnStatus sub-machine.
	Returned
)

// TransitionPolicy controls how strictly status changes are validated.
type TransitionPolicy int

const (
	// StrictTransitions rejects any status change that is not an edge
	// of the transition graph documented on Status.
	StrictTransitions TransitionPolicy = iota

	// LaxTransitions allows any change between valid statuses.
	// It exists for backward compatibility with administrative tooling
	// that sets statuses freely.
	LaxTransitions
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Returned:   "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Returned:   "Returned",
	}
}

// getAllowedTransitions returns the edges of the status graph.
// A missing key means the status is final.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // Cancelled is final and intentionally absent
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {Returned},
		Returned:   {Delivered},
	}
}

// StatusFromString parses a status name, case-insensitively.
//
// Returns:
//   - the matching Status for names such as "Pending" or "SHIPPED"
//   - an error if the name does not correspond to a valid status
//
// This function is used to convert statuses arriving from external
// sources (API requests, configuration) into domain values.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled, Returned.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return len(getAllowedTransitions()[s]) == 0
}

// CanTransitionTo reports whether next is a legal successor of s
// under the strict transition graph.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to next under the given policy.
//
// Under StrictTransitions only edges of the documented graph are
// accepted. Under LaxTransitions any valid target status is accepted;
// the target must still be a valid status value.
//
// Returns:
//   - (next, nil) on a permitted transition
//   - (0, error) if next is invalid or the transition is not allowed
//
// This method is used by Order.ChangeStatus() to enforce state transitions.
func (s Status) TransitionTo(next Status, policy TransitionPolicy) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if policy == StrictTransitions && !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("transition to %s", next),
			s.String(),
		)
	}

	return next, nil
}
