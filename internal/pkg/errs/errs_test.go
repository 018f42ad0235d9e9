package errs_test

import (
	"errors"
	"testing"

	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", "123")

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "123", cause)

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("postalCode")

		assert.Equal(t, "postalCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: postalCode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("postalCode", cause)

		assert.Equal(t, "postalCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: postalCode (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("street")

		assert.Equal(t, "street", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: street", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("street", cause)

		assert.Equal(t, "street", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: street (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("Blue Widget", 5, 2)

	assert.Equal(t, "Blue Widget", err.ProductName)
	assert.Equal(t, 5, err.Requested)
	assert.Equal(t, 2, err.Available)
	assert.Equal(t, "insufficient stock: Blue Widget, requested 5, available 2", err.Error())
	assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("issue refund", "DELIVERED")

	assert.Equal(t, "issue refund", err.Operation)
	assert.Equal(t, "DELIVERED", err.State)
	assert.Equal(t, "invalid state: issue refund is not allowed in status DELIVERED", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("user-42", "request a return for this order")

	assert.Equal(t, "user-42", err.UserID)
	assert.Equal(t, "unauthorized: user user-42 may not request a return for this order", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order", "abc")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		assert.Equal(t, "concurrent modification conflict: order abc", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("order", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: duplicate key")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "concurrent modification conflict", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("region"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rate", 150, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("city"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInsufficientStockError("widget", 2, 0), errs.ErrInsufficientStock)
		require.ErrorIs(t, errs.NewInvalidStateError("cancel return", "PENDING"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewUnauthorizedError("u1", "cancel a return"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewConflictError("order", 7), errs.ErrConflict)
	})
}
