package services

import (
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quote is the priced breakdown of an order. The grand total is derived,
// never stored, so it cannot drift from its components.
type Quote struct {
	// Subtotal is the sum of every line's unit price times quantity
	Subtotal kernel.Money

	// TaxRate is the resolved percent rate the tax was computed from
	TaxRate decimal.Decimal

	// Tax is the tax amount, rounded once to the currency's minor unit
	Tax kernel.Money

	// Shipping is the shipping fee after the free-shipping rule
	Shipping kernel.Money
}

// Total returns Subtotal + Tax + Shipping.
func (q Quote) Total() kernel.Money {
	return q.Subtotal.Add(q.Tax).Add(q.Shipping)
}

// PriceCalculator is a domain service that prices an order from its lines
// and a jurisdiction. It is a pure function of its inputs: it never reads
// stock, never mutates anything, and two calls with identical inputs and
// the same configuration snapshots yield identical quotes.
//
// Pricing rules:
//   - the subtotal is accumulated in fixed-point decimal, never floats
//   - shipping is zero once the subtotal reaches the free-shipping
//     threshold, the flat fee otherwise; the comparison uses the
//     already-computed subtotal
//   - the tax rate resolves postal prefix first, then region, then the
//     default; tax = subtotal * rate / 100, rounded half-up exactly once
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Price computes the quote for the given lines in the given jurisdiction.
//
// Parameters:
//   - lines: the order lines to price (at least one, each constructed)
//   - taxTable: the tax configuration snapshot
//   - shippingConfig: the shipping configuration snapshot
//   - region: the jurisdiction's state/region code
//   - postalCode: the jurisdiction's postal code
//
// Returns:
//   - Quote: the priced breakdown if the inputs are valid
//   - error: validation error for empty lines or unconstructed configuration
func (PriceCalculator) Price(
	lines []order.Line,
	taxTable tariff.TaxTable,
	shippingConfig tariff.ShippingConfig,
	region string,
	postalCode string,
) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("lines")
	}
	if err := taxTable.Validate(); err != nil {
		return Quote{}, err
	}
	if err := shippingConfig.Validate(); err != nil {
		return Quote{}, err
	}

	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return Quote{}, err
		}
		subtotal = subtotal.Add(line.Subtotal())
	}

	rate := taxTable.RateFor(region, postalCode)

	return Quote{
		Subtotal: subtotal,
		TaxRate:  rate,
		Tax:      subtotal.ApplyRatePercent(rate),
		Shipping: shippingConfig.FeeFor(subtotal),
	}, nil
}
