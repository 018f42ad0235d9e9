package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteOrderQueryIsNotConstructed = errors.New(
		"QuoteOrderQuery must be created via NewQuoteOrderQuery constructor",
	)
	ErrQuoteOrderItemIsNotConstructed = errors.New(
		"QuoteOrderItem must be created via NewQuoteOrderItem constructor",
	)
)

// QuoteOrderItem is one basket position to be priced.
type QuoteOrderItem struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewQuoteOrderItem creates a basket position for a quote.
// The quantity must be positive.
func NewQuoteOrderItem(productID kernel.UUID, quantity int) (QuoteOrderItem, error) {
	if err := productID.Validate(); err != nil {
		return QuoteOrderItem{}, err
	}
	if quantity <= 0 {
		return QuoteOrderItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return QuoteOrderItem{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i QuoteOrderItem) Validate() error {
	return i.guard.Validate(ErrQuoteOrderItemIsNotConstructed)
}

// ProductID returns the catalog product being priced.
func (i QuoteOrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units.
func (i QuoteOrderItem) Quantity() int {
	return i.quantity
}

// QuoteOrderQuery prices a basket without creating an order or touching
// stock. The quote uses the same tariff data as order creation, so a
// basket quoted and then ordered immediately prices identically.
type QuoteOrderQuery struct {
	items      []QuoteOrderItem
	region     string
	postalCode string

	guard guard.ConstructorGuard
}

// NewQuoteOrderQuery creates a query to price a basket for a destination.
func NewQuoteOrderQuery(items []QuoteOrderItem, region, postalCode string) (QuoteOrderQuery, error) {
	if len(items) == 0 {
		return QuoteOrderQuery{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return QuoteOrderQuery{}, err
		}
	}

	return QuoteOrderQuery{
		items:      items,
		region:     region,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteOrderQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderQueryIsNotConstructed)
}

// Items returns the basket positions to price.
func (q QuoteOrderQuery) Items() []QuoteOrderItem {
	return q.items
}

// Region returns the destination region.
func (q QuoteOrderQuery) Region() string {
	return q.region
}

// PostalCode returns the destination postal code.
func (q QuoteOrderQuery) PostalCode() string {
	return q.postalCode
}

// QuoteOrderQueryResponse is the priced basket.
type QuoteOrderQueryResponse struct {
	Subtotal kernel.Money
	TaxRate  decimal.Decimal
	Tax      kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}
