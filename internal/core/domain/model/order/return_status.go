package order

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// ReturnStatus tracks the progress of a return, meaningful only while
// the order status is Returned. Unlike Status, the stages are not
// strictly sequential: administrators may skip ahead (for example
// straight to ReturnRefundIssued). ReturnRefundIssued is terminal.
//
//	ReturnNone -> ReturnRequested -> ReturnLabelSent -> ReturnInTransit
//	           -> ReturnReceived -> ReturnRefundIssued
type ReturnStatus int

const (
	// ReturnNone means no return has been requested for the order.
	// It is the zero value and valid for any order without an active return.
	ReturnNone ReturnStatus = iota

	// ReturnRequested is set when the customer requests a return.
	ReturnRequested

	// ReturnLabelSent indicates a return shipping label has been issued.
	ReturnLabelSent

	// ReturnInTransit indicates the return parcel is on its way back.
	ReturnInTransit

	// ReturnReceived indicates the warehouse has received the return.
	ReturnReceived

	// ReturnRefundIssued indicates the refund has been paid out.
	// This is a terminal state: no further return mutation is permitted
	// and the order must remain in Returned status.
	ReturnRefundIssued
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnNone:         "None",
		ReturnRequested:    "Requested",
		ReturnLabelSent:    "LabelSent",
		ReturnInTransit:    "InTransit",
		ReturnReceived:     "Received",
		ReturnRefundIssued: "RefundIssued",
	}
}

// ReturnStatusFromString parses a return status name, case-insensitively.
func ReturnStatusFromString(name string) (ReturnStatus, error) {
	for status, str := range getReturnStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return ReturnNone, errs.NewValueIsInvalidErrorWithCause("return status is invalid",
		fmt.Errorf("%q is not a valid return status", name))
}

// Validate checks if the ReturnStatus value is valid.
// ReturnNone is valid: it is the state of every order without a return.
func (s ReturnStatus) Validate() error {
	if _, ok := getReturnStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("return status is invalid",
			fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

// IsTerminal reports whether the return status permits no further changes.
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnRefundIssued
}

// String returns the human-readable name of the return status.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "None"
}
