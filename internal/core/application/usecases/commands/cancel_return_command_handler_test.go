package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelReturnCommandHandler_Handle_Success(t *testing.T) {
	store := newFakeStore()
	returned := returnedOrder(t, store)

	cmd, err := commands.NewCancelReturnCommand(returned.ID(), returned.UserID())
	require.NoError(t, err)

	h := commands.NewCancelReturnCommandHandler(fakeOrderUoWFactory{store})
	notifications, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	assert.Equal(t, order.CustomerReturnCancelled, notifications[0].Kind)
	assert.Equal(t, order.AdminReturnCancelledAlert, notifications[1].Kind)

	persisted := store.order(returned.ID())
	assert.Equal(t, order.Delivered, persisted.Status())
	assert.Equal(t, order.ReturnNone, persisted.ReturnStatus())
	assert.Nil(t, persisted.ReturnRequestedAt())
}

func TestCancelReturnCommandHandler_Handle_DoesNotRestock(t *testing.T) {
	store := newFakeStore()
	returned := returnedOrder(t, store)
	productID := returned.Lines()[0].ProductID()
	stockBefore := store.productStock(productID)

	cmd, err := commands.NewCancelReturnCommand(returned.ID(), returned.UserID())
	require.NoError(t, err)

	h := commands.NewCancelReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	assert.Equal(t, stockBefore, store.productStock(productID))
}

func TestCancelReturnCommandHandler_Handle_NoActiveReturn(t *testing.T) {
	store := newFakeStore()
	delivered := deliveredOrder(t, store)

	cmd, err := commands.NewCancelReturnCommand(delivered.ID(), delivered.UserID())
	require.NoError(t, err)

	h := commands.NewCancelReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCancelReturnCommandHandler_Handle_Unauthorized(t *testing.T) {
	store := newFakeStore()
	returned := returnedOrder(t, store)

	cmd, err := commands.NewCancelReturnCommand(returned.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCancelReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Returned, store.order(returned.ID()).Status())
}
