package product_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := product.NewProduct(id, "Blue Widget", kernel.MustMoney("19.99"), 10)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Blue Widget", p.Name())
		assert.Equal(t, "19.99", p.Price().String())
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Blue Widget", kernel.MustMoney("19.99"), 10)
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", kernel.MustMoney("19.99"), 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero stock is allowed", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})
}

func TestProduct_Reserve(t *testing.T) {
	newProduct := func(stock int) *product.Product {
		p, err := product.NewProduct(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), stock)
		require.NoError(t, err)
		return p
	}

	t.Run("decrements stock", func(t *testing.T) {
		p := newProduct(10)
		require.NoError(t, p.Reserve(3))
		assert.Equal(t, 7, p.Stock())
	})

	t.Run("can reserve exactly the remaining stock", func(t *testing.T) {
		p := newProduct(3)
		require.NoError(t, p.Reserve(3))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("insufficient stock leaves product unmodified", func(t *testing.T) {
		p := newProduct(2)
		err := p.Reserve(5)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		p := newProduct(2)
		require.ErrorIs(t, p.Reserve(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.Reserve(-1), errs.ErrValueIsInvalid)
	})
}

func TestProduct_ReleaseAndRestock(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), 5)
	require.NoError(t, err)

	require.NoError(t, p.Reserve(5))
	require.NoError(t, p.Release(5))
	assert.Equal(t, 5, p.Stock())

	require.NoError(t, p.Restock(20))
	assert.Equal(t, 25, p.Stock())

	require.ErrorIs(t, p.Release(0), errs.ErrValueIsInvalid)
	require.ErrorIs(t, p.Restock(-3), errs.ErrValueIsInvalid)
}

func TestProduct_ChangePrice(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), 5)
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(kernel.MustMoney("24.99")))
	assert.Equal(t, "24.99", p.Price().String())
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
