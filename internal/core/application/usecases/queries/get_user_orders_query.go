package queries

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves the order history of a single customer.
// Returns every order the customer has placed, newest first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUserOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user orders: %w", err)
//	}
type GetUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's order history.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserOrdersQueryResponse is the customer-facing order summary row.
type GetUserOrdersQueryResponse struct {
	ID             kernel.UUID
	Status         order.Status
	PaymentStatus  order.PaymentStatus
	ReturnStatus   order.ReturnStatus
	Total          kernel.Money
	TrackingNumber string
	Carrier        string
	CreatedAt      time.Time
}
