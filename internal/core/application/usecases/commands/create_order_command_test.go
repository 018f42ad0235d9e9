package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		productID := kernel.NewUUID()
		orderItem, err := commands.NewOrderItem(productID, 3)

		require.NoError(t, err)
		require.NoError(t, orderItem.Validate())
		assert.True(t, orderItem.ProductID().IsEqual(productID))
		assert.Equal(t, 3, orderItem.Quantity())
	})

	t.Run("should reject a non-positive quantity", func(t *testing.T) {
		_, err := commands.NewOrderItem(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an invalid product id", func(t *testing.T) {
		_, err := commands.NewOrderItem(kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("should reject a zero value item", func(t *testing.T) {
		var orderItem commands.OrderItem
		require.ErrorIs(t, orderItem.Validate(), commands.ErrOrderItemIsNotConstructed)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	validItems := func(t *testing.T) []commands.OrderItem {
		return []commands.OrderItem{item(t, kernel.NewUUID(), 1)}
	}

	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), validItems(t), testAddress(t), "card", "pay_abc123",
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
		assert.Equal(t, "card", cmd.PaymentMethod())
		assert.Equal(t, "pay_abc123", cmd.PaymentRef())
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), nil, testAddress(t), "card", "pay_abc123",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unconstructed address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), validItems(t), kernel.Address{}, "card", "pay_abc123",
		)
		require.Error(t, err)
	})

	t.Run("should reject missing payment details", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), validItems(t), testAddress(t), "", "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
