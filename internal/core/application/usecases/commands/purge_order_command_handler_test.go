package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeOrderCommandHandler_Handle_Success(t *testing.T) {
	store := newFakeStore()
	productID := seedProduct(t, store, "Blue Widget", "19.99", 10)
	seeded := seedOrder(t, store, productID, 2)

	cmd, err := commands.NewPurgeOrderCommand(seeded.ID())
	require.NoError(t, err)

	h := commands.NewPurgeOrderCommandHandler(fakeOrderUoWFactory{store})
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, 0, store.orderCount())
}

func TestPurgeOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	store := newFakeStore()

	cmd, err := commands.NewPurgeOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewPurgeOrderCommandHandler(fakeOrderUoWFactory{store})
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
