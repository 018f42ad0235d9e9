package queries_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteItem(t *testing.T, quantity int) queries.QuoteOrderItem {
	t.Helper()
	item, err := queries.NewQuoteOrderItem(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return item
}

func TestNewQuoteOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewQuoteOrderQuery(
		[]queries.QuoteOrderItem{quoteItem(t, 2)},
		"NY",
		"10001",
	)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "NY", query.Region())
	assert.Equal(t, "10001", query.PostalCode())
	assert.Len(t, query.Items(), 1)
}

func TestNewQuoteOrderQuery_EmptyItems(t *testing.T) {
	_, err := queries.NewQuoteOrderQuery(nil, "NY", "10001")

	require.Error(t, err)
}

func TestNewQuoteOrderItem_Validation(t *testing.T) {
	t.Run("should reject a non-positive quantity", func(t *testing.T) {
		_, err := queries.NewQuoteOrderItem(kernel.NewUUID(), 0)
		require.Error(t, err)
	})

	t.Run("should reject an unconstructed item inside a query", func(t *testing.T) {
		_, err := queries.NewQuoteOrderQuery(
			[]queries.QuoteOrderItem{{}},
			"NY",
			"10001",
		)
		require.Error(t, err)
	})
}

func TestQuoteOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.QuoteOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrQuoteOrderQueryIsNotConstructed)
}
