package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves aggregate order statistics for the
// admin dashboard: order counts per status, gross revenue, and the total
// amount refunded so far.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for dashboard statistics.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the aggregate dashboard figures.
// GrossRevenue sums the totals of all orders that were not cancelled;
// Refunded sums the refund amounts actually paid out.
type GetDashboardStatsQueryResponse struct {
	OrdersByStatus map[order.Status]int
	GrossRevenue   kernel.Money
	Refunded       kernel.Money
}
