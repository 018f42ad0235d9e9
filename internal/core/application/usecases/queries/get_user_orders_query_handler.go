package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's order history straight from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the total is recomputed from its persisted components so the
// read model can never disagree with the pricing invariant.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders, newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_status,
			return_status,
			subtotal + tax + shipping AS total,
			tracking_number,
			carrier,
			created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUserOrdersQueryResponse
		var id uuid.UUID
		var status, paymentStatus, returnStatus int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&status,
			&paymentStatus,
			&returnStatus,
			&total,
			&orderResp.TrackingNumber,
			&orderResp.Carrier,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.Total = totalMoney

		orderResp.Status = order.Status(status)
		orderResp.PaymentStatus = order.PaymentStatus(paymentStatus)
		orderResp.ReturnStatus = order.ReturnStatus(returnStatus)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
