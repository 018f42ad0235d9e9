package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateShippingConfigCommandHandler_Handle_Success(t *testing.T) {
	store := newFakeStore()

	cmd, err := commands.NewUpdateShippingConfigCommand(kernel.MustMoney("7.50"), kernel.MustMoney("75.00"))
	require.NoError(t, err)

	h := commands.NewUpdateShippingConfigCommandHandler(fakeTariffUoWFactory{store})
	require.NoError(t, h.Handle(t.Context(), cmd))

	require.NotNil(t, store.shippingConfig)
	assert.Equal(t, "7.50", store.shippingConfig.Cost().String())
	assert.Equal(t, "75.00", store.shippingConfig.FreeShippingThreshold().String())
}

func TestUpdateShippingConfigCommandHandler_Handle_AffectsNewOrders(t *testing.T) {
	store := newFakeStore()

	cmd, err := commands.NewUpdateShippingConfigCommand(kernel.MustMoney("7.50"), kernel.MustMoney("30.00"))
	require.NoError(t, err)

	h := commands.NewUpdateShippingConfigCommandHandler(fakeTariffUoWFactory{store})
	require.NoError(t, h.Handle(t.Context(), cmd))

	// 2 x 19.99 clears the lowered threshold, so shipping is free.
	productID := seedProduct(t, store, "Blue Widget", "19.99", 10)
	seeded := seedOrder(t, store, productID, 2)

	persisted := store.order(seeded.ID())
	assert.True(t, persisted.Shipping().IsZero())
}
