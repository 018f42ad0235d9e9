package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes aggregate order figures in the
// database. Two grouped scans keep the numbers consistent within a single
// snapshot instead of issuing one count per status.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns the dashboard figures.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := GetDashboardStatsQueryResponse{
		OrdersByStatus: make(map[order.Status]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(subtotal + tax + shipping), 0) AS revenue,
			COALESCE(SUM(refund_amount), 0) AS refunded
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	grossRevenue := decimal.Zero
	refunded := decimal.Zero

	for rows.Next() {
		var status, count int
		var revenue, refundedForStatus decimal.Decimal

		err = rows.Scan(&status, &count, &revenue, &refundedForStatus)
		if err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}

		orderStatus := order.Status(status)
		response.OrdersByStatus[orderStatus] = count

		if orderStatus != order.Cancelled {
			grossRevenue = grossRevenue.Add(revenue)
		}
		refunded = refunded.Add(refundedForStatus)
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	revenueMoney, err := kernel.NewMoney(grossRevenue)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	response.GrossRevenue = revenueMoney

	refundedMoney, err := kernel.NewMoney(refunded)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	response.Refunded = refundedMoney

	return response, nil
}
