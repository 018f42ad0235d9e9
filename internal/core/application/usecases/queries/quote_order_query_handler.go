package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuoteOrderQueryHandler prices a basket against current catalog prices
// and tariff configuration. Nothing is written: no order, no reservation.
// The priced breakdown comes from the same pricing service the checkout
// path uses, so quote and order always agree.
type QuoteOrderQueryHandler struct {
	db              *gorm.DB
	priceCalculator services.PriceCalculator
}

// NewQuoteOrderQueryHandler creates a handler for basket quotes.
func NewQuoteOrderQueryHandler(db *gorm.DB, priceCalculator services.PriceCalculator) QuoteOrderQueryHandler {
	return QuoteOrderQueryHandler{db: db, priceCalculator: priceCalculator}
}

// Handle prices the basket and returns the breakdown.
// Returns an ObjectNotFoundError if any product is unknown.
func (h QuoteOrderQueryHandler) Handle(
	ctx context.Context,
	query QuoteOrderQuery,
) (QuoteOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, query.Items())
	if err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	taxTable, err := h.loadTaxTable(ctx)
	if err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	shippingConfig, err := h.loadShippingConfig(ctx)
	if err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	quote, err := h.priceCalculator.Price(lines, taxTable, shippingConfig, query.Region(), query.PostalCode())
	if err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	return QuoteOrderQueryResponse{
		Subtotal: quote.Subtotal,
		TaxRate:  quote.TaxRate,
		Tax:      quote.Tax,
		Shipping: quote.Shipping,
		Total:    quote.Total(),
	}, nil
}

func (h QuoteOrderQueryHandler) loadLines(
	ctx context.Context,
	items []QuoteOrderItem,
) ([]order.Line, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID().Bytes())
	}

	type productRow struct {
		name  string
		price decimal.Decimal
	}
	products := make(map[string]productRow, len(items))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var row productRow

		err = rows.Scan(&id, &row.name, &row.price)
		if err != nil {
			return nil, err
		}
		products[id.String()] = row
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		row, ok := products[item.ProductID().String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID())
		}

		unitPrice, priceErr := kernel.NewMoney(row.price)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(item.ProductID(), row.name, unitPrice, item.Quantity())
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (h QuoteOrderQueryHandler) loadShippingConfig(ctx context.Context) (tariff.ShippingConfig, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cost,
			free_shipping_threshold
		FROM shipping_configs
		ORDER BY updated_at DESC
		LIMIT 1
	`).Rows()
	if err != nil {
		return tariff.ShippingConfig{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return tariff.ShippingConfig{}, err
		}
		return tariff.DefaultShippingConfig(), nil
	}

	var cost, threshold decimal.Decimal
	if err = rows.Scan(&cost, &threshold); err != nil {
		return tariff.ShippingConfig{}, err
	}

	costMoney, err := kernel.NewMoney(cost)
	if err != nil {
		return tariff.ShippingConfig{}, err
	}
	thresholdMoney, err := kernel.NewMoney(threshold)
	if err != nil {
		return tariff.ShippingConfig{}, err
	}

	return tariff.NewShippingConfig(costMoney, thresholdMoney)
}

func (h QuoteOrderQueryHandler) loadTaxTable(ctx context.Context) (tariff.TaxTable, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			scope,
			code,
			rate
		FROM tax_rates
	`).Rows()
	if err != nil {
		return tariff.TaxTable{}, err
	}
	defer rows.Close()

	byRegion := make(map[string]decimal.Decimal)
	byPostalPrefix := make(map[string]decimal.Decimal)
	defaultRate := decimal.Decimal{}
	hasRows := false

	for rows.Next() {
		var scope, code string
		var rate decimal.Decimal

		err = rows.Scan(&scope, &code, &rate)
		if err != nil {
			return tariff.TaxTable{}, err
		}

		hasRows = true
		switch scope {
		case tariff.TaxScopeRegion:
			byRegion[code] = rate
		case tariff.TaxScopePostalPrefix:
			byPostalPrefix[code] = rate
		case tariff.TaxScopeDefault:
			defaultRate = rate
		}
	}
	if err = rows.Err(); err != nil {
		return tariff.TaxTable{}, err
	}

	if !hasRows {
		return tariff.DefaultTaxTable(), nil
	}

	return tariff.NewTaxTable(byRegion, byPostalPrefix, defaultRate)
}
