package order

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// Payment capture happens upstream of this package; the status here
// records the outcome supplied by the payment collaborator.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates the payment has been initiated but not settled.
	PaymentPending

	// PaymentCompleted indicates the payment has been captured.
	// New orders are created with this status.
	PaymentCompleted

	// PaymentFailed indicates the payment could not be captured.
	PaymentFailed

	// PaymentRefunded indicates the payment has been returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentPending:   "Pending",
		PaymentCompleted: "Completed",
		PaymentFailed:    "Failed",
		PaymentRefunded:  "Refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "Pending",
		PaymentCompleted: "Completed",
		PaymentFailed:    "Failed",
		PaymentRefunded:  "Refunded",
	}
}

// PaymentStatusFromString parses a payment status name, case-insensitively.
func PaymentStatusFromString(name string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", name))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
