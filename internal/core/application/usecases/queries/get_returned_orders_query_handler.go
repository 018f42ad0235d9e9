package queries

import (
	"context"
	"database/sql"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetReturnedOrdersQueryHandler retrieves active returns from the database.
// Oldest return requests come first so the back office works the queue in
// arrival order.
type GetReturnedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnedOrdersQueryHandler creates a handler for active return queries.
// Requires a GORM database connection for query execution.
func NewGetReturnedOrdersQueryHandler(db *gorm.DB) GetReturnedOrdersQueryHandler {
	return GetReturnedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in "Returned" status.
func (h GetReturnedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReturnedOrdersQuery,
) ([]GetReturnedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	returns := make([]GetReturnedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			return_status,
			return_tracking_number,
			return_carrier,
			return_requested_at,
			subtotal + tax + shipping AS total
		FROM orders
		WHERE status = ?
		ORDER BY return_requested_at
	`, order.Returned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var returnResp GetReturnedOrdersQueryResponse
		var id, userID uuid.UUID
		var returnStatus int
		var requestedAt sql.NullTime
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&userID,
			&returnStatus,
			&returnResp.ReturnTrackingNumber,
			&returnResp.ReturnCarrier,
			&requestedAt,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		returnResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		returnResp.UserID = ownerID

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		returnResp.Total = totalMoney

		returnResp.ReturnStatus = order.ReturnStatus(returnStatus)
		if requestedAt.Valid {
			stampedAt := requestedAt.Time
			returnResp.ReturnRequestedAt = &stampedAt
		}
		returns = append(returns, returnResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return returns, nil
}
