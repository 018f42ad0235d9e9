package queries_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetReturnedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetReturnedOrdersQuery()

	require.NoError(t, query.Validate())
}

func TestGetReturnedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetReturnedOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetReturnedOrdersQueryIsNotConstructed)
}

func TestNewGetDashboardStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetDashboardStatsQuery()

	require.NoError(t, query.Validate())
}

func TestGetDashboardStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardStatsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
}
