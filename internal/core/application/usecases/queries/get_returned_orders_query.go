package queries

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrGetReturnedOrdersQueryIsNotConstructed = errors.New(
		"GetReturnedOrdersQuery must be created via NewGetReturnedOrdersQuery constructor",
	)
)

// GetReturnedOrdersQuery retrieves all orders with an active return.
// Returns orders in "Returned" status for back-office return processing.
//
// Example:
//
//	query := NewGetReturnedOrdersQuery()
//	handler := NewGetReturnedOrdersQueryHandler(db)
//
//	returns, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active returns: %w", err)
//	}
type GetReturnedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReturnedOrdersQuery creates a query to retrieve active returns.
// This is a parameterless query that fetches every order being returned.
func NewGetReturnedOrdersQuery() GetReturnedOrdersQuery {
	return GetReturnedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReturnedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnedOrdersQueryIsNotConstructed)
}

// GetReturnedOrdersQueryResponse is the back-office view of one return.
type GetReturnedOrdersQueryResponse struct {
	ID                   kernel.UUID
	UserID               kernel.UUID
	ReturnStatus         order.ReturnStatus
	ReturnTrackingNumber string
	ReturnCarrier        string
	ReturnRequestedAt    *time.Time
	Total                kernel.Money
}
