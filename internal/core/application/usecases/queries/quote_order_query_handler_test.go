package queries_test

import (
	"context"
	"testing"

	"ecommerce/internal/adapters/out/postgres/tariffrepo"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QuoteOrderQueryHandlerTestSuite struct {
	QueryHandlerTestSuite
}

func (suite *QuoteOrderQueryHandlerTestSuite) handler() queries.QuoteOrderQueryHandler {
	return queries.NewQuoteOrderQueryHandler(suite.db, services.NewPriceCalculator())
}

func (suite *QuoteOrderQueryHandlerTestSuite) quoteItem(productID kernel.UUID, quantity int) queries.QuoteOrderItem {
	item, err := queries.NewQuoteOrderItem(productID, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *QuoteOrderQueryHandlerTestSuite) TestHandle_PricesBasketWithDefaults() {
	productID := suite.seedProduct("Blue Widget", "19.99", 10)

	query, err := queries.NewQuoteOrderQuery(
		[]queries.QuoteOrderItem{suite.quoteItem(productID, 2)},
		"NY",
		"10001",
	)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("39.98", result.Subtotal.String())
	suite.Equal("8.875", result.TaxRate.String())
	suite.Equal("3.55", result.Tax.String())
	suite.Equal("10.00", result.Shipping.String())
	suite.Equal("53.53", result.Total.String())
}

func (suite *QuoteOrderQueryHandlerTestSuite) TestHandle_FreeShippingOverThreshold() {
	productID := suite.seedProduct("Blue Widget", "25.00", 10)

	query, err := queries.NewQuoteOrderQuery(
		[]queries.QuoteOrderItem{suite.quoteItem(productID, 2)},
		"TX",
		"75001",
	)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("50.00", result.Subtotal.String())
	suite.True(result.Shipping.IsZero())
}

func (suite *QuoteOrderQueryHandlerTestSuite) TestHandle_UsesStoredTariffs() {
	productID := suite.seedProduct("Blue Widget", "19.99", 10)

	repo := tariffrepo.NewGormTariffRepository(suite.db)

	config, err := tariff.NewShippingConfig(kernel.MustMoney("5.00"), kernel.MustMoney("100.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.SaveShippingConfig(context.Background(), config))

	table, err := tariff.NewTaxTable(
		map[string]decimal.Decimal{"NY": decimal.RequireFromString("4")},
		nil,
		decimal.RequireFromString("2"),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.SaveTaxTable(context.Background(), table))

	query, err := queries.NewQuoteOrderQuery(
		[]queries.QuoteOrderItem{suite.quoteItem(productID, 2)},
		"NY",
		"10001",
	)
	suite.Require().NoError(err)

	result, err := suite.handler().Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("4", result.TaxRate.String())
	suite.Equal("1.60", result.Tax.String())
	suite.Equal("5.00", result.Shipping.String())
}

func (suite *QuoteOrderQueryHandlerTestSuite) TestHandle_UnknownProduct_ReturnsNotFound() {
	query, err := queries.NewQuoteOrderQuery(
		[]queries.QuoteOrderItem{suite.quoteItem(kernel.NewUUID(), 1)},
		"NY",
		"10001",
	)
	suite.Require().NoError(err)

	_, err = suite.handler().Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQuoteOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteOrderQueryHandlerTestSuite))
}
