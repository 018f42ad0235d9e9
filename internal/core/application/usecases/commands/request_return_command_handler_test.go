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

// deliveredOrder seeds the store with an order walked to Delivered.
func deliveredOrder(t *testing.T, store *fakeStore) *order.Order {
	t.Helper()
	productID := seedProduct(t, store, "Blue Widget", "19.99", 10)
	seeded := seedOrder(t, store, productID, 2)
	advanceOrder(t, store, seeded.ID(), order.Processing, order.Shipped, order.Delivered)
	return store.order(seeded.ID())
}

// returnedOrder seeds the store with an order carrying an active return.
func returnedOrder(t *testing.T, store *fakeStore) *order.Order {
	t.Helper()
	delivered := deliveredOrder(t, store)

	cmd, err := commands.NewRequestReturnCommand(delivered.ID(), delivered.UserID())
	require.NoError(t, err)

	h := commands.NewRequestReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	return store.order(delivered.ID())
}

func TestRequestReturnCommandHandler_Handle_Success(t *testing.T) {
	store := newFakeStore()
	delivered := deliveredOrder(t, store)

	cmd, err := commands.NewRequestReturnCommand(delivered.ID(), delivered.UserID())
	require.NoError(t, err)

	h := commands.NewRequestReturnCommandHandler(fakeOrderUoWFactory{store})
	notifications, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	assert.Equal(t, order.CustomerReturnConfirmed, notifications[0].Kind)
	assert.Equal(t, order.AdminNewReturnAlert, notifications[1].Kind)

	persisted := store.order(delivered.ID())
	assert.Equal(t, order.Returned, persisted.Status())
	assert.Equal(t, order.ReturnRequested, persisted.ReturnStatus())
	assert.NotNil(t, persisted.ReturnRequestedAt())
}

func TestRequestReturnCommandHandler_Handle_Unauthorized(t *testing.T) {
	store := newFakeStore()
	delivered := deliveredOrder(t, store)

	cmd, err := commands.NewRequestReturnCommand(delivered.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewRequestReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Delivered, store.order(delivered.ID()).Status())
}

func TestRequestReturnCommandHandler_Handle_NotDelivered(t *testing.T) {
	store := newFakeStore()
	productID := seedProduct(t, store, "Blue Widget", "19.99", 10)
	seeded := seedOrder(t, store, productID, 2)

	cmd, err := commands.NewRequestReturnCommand(seeded.ID(), seeded.UserID())
	require.NoError(t, err)

	h := commands.NewRequestReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestRequestReturnCommandHandler_Handle_OrderNotFound(t *testing.T) {
	store := newFakeStore()

	cmd, err := commands.NewRequestReturnCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewRequestReturnCommandHandler(fakeOrderUoWFactory{store})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
