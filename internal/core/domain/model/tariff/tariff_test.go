package tariff_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingConfig_FeeFor(t *testing.T) {
	config := tariff.DefaultShippingConfig()

	t.Run("should charge the flat fee below the threshold", func(t *testing.T) {
		fee := config.FeeFor(kernel.MustMoney("49.99"))
		assert.Equal(t, "10.00", fee.String())
	})

	t.Run("should be free exactly at the threshold", func(t *testing.T) {
		fee := config.FeeFor(kernel.MustMoney("50.00"))
		assert.True(t, fee.IsZero())
	})

	t.Run("should be free above the threshold", func(t *testing.T) {
		fee := config.FeeFor(kernel.MustMoney("120.50"))
		assert.True(t, fee.IsZero())
	})
}

func TestShippingConfig_Validate(t *testing.T) {
	var config tariff.ShippingConfig
	require.ErrorIs(t, config.Validate(), tariff.ErrShippingConfigIsNotConstructed)

	require.NoError(t, tariff.DefaultShippingConfig().Validate())
}

func TestTaxTable_RateFor(t *testing.T) {
	table := tariff.DefaultTaxTable()

	t.Run("should prefer the postal prefix over the region", func(t *testing.T) {
		rate := table.RateFor("NY", "10001")
		assert.Equal(t, "8.875", rate.String())
	})

	t.Run("should fall back to the region", func(t *testing.T) {
		rate := table.RateFor("NY", "12601")
		assert.Equal(t, "8.52", rate.String())
	})

	t.Run("should match regions case-insensitively", func(t *testing.T) {
		rate := table.RateFor("ny", "12601")
		assert.Equal(t, "8.52", rate.String())
	})

	t.Run("should fall back to the default rate", func(t *testing.T) {
		rate := table.RateFor("ZZ", "99999")
		assert.Equal(t, "7", rate.String())
	})

	t.Run("should use the default rate for short postal codes and unknown regions", func(t *testing.T) {
		rate := table.RateFor("ZZ", "10")
		assert.Equal(t, "7", rate.String())
	})
}

func TestNewTaxTable(t *testing.T) {
	t.Run("should normalize region keys", func(t *testing.T) {
		table, err := tariff.NewTaxTable(
			map[string]decimal.Decimal{"ca": decimal.RequireFromString("7.25")},
			nil,
			decimal.RequireFromString("7.0"),
		)

		require.NoError(t, err)
		assert.Equal(t, "7.25", table.RateFor("CA", "").String())
	})

	t.Run("should reject rates outside the percent range", func(t *testing.T) {
		_, err := tariff.NewTaxTable(
			map[string]decimal.Decimal{"CA": decimal.RequireFromString("101")},
			nil,
			decimal.RequireFromString("7.0"),
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = tariff.NewTaxTable(nil, nil, decimal.RequireFromString("-1"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a prefix that is not three characters", func(t *testing.T) {
		_, err := tariff.NewTaxTable(
			nil,
			map[string]decimal.Decimal{"10": decimal.RequireFromString("8.0")},
			decimal.RequireFromString("7.0"),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should copy the input maps", func(t *testing.T) {
		byRegion := map[string]decimal.Decimal{"CA": decimal.RequireFromString("7.25")}
		table, err := tariff.NewTaxTable(byRegion, nil, decimal.RequireFromString("7.0"))
		require.NoError(t, err)

		byRegion["CA"] = decimal.RequireFromString("99")

		assert.Equal(t, "7.25", table.RateFor("CA", "").String())
	})
}
