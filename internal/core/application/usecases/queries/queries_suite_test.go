package queries_test

import (
	"context"
	"time"

	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/adapters/out/postgres/tariffrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repository tracker interface for test seeding.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlerTestSuite is the shared harness for read-model tests: one
// PostgreSQL container per suite, the full schema migrated, and tables
// truncated before each test.
type QueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&productrepo.ProductDTO{},
		&tariffrepo.ShippingConfigDTO{},
		&tariffrepo.TaxRateDTO{},
	))
}

func (suite *QueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, products, shipping_configs, tax_rates CASCADE").Error,
	)
}

func (suite *QueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder persists a fresh Pending order for the given user and returns it.
func (suite *QueryHandlerTestSuite) seedOrder(userID kernel.UUID, createdAt time.Time) *order.Order {
	address, err := kernel.NewAddress("350 5th Ave", "New York", "NY", "10001", "US")
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), 2)
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(
		kernel.NewUUID(),
		userID,
		[]order.Line{line},
		address,
		kernel.MustMoney("39.98"),
		kernel.MustMoney("3.55"),
		kernel.MustMoney("10.00"),
		"credit_card",
		"pay_9c1f",
		createdAt,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded
}

// advanceOrder walks a seeded order through the given statuses and persists it.
func (suite *QueryHandlerTestSuite) advanceOrder(seeded *order.Order, statuses ...order.Status) {
	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	for _, status := range statuses {
		next := status
		suite.Require().NoError(seeded.ChangeStatus(&next, nil, "", "", order.StrictTransitions))
	}
	suite.Require().NoError(repo.Update(context.Background(), seeded))
}

// seedProduct persists one catalog product and returns its ID.
func (suite *QueryHandlerTestSuite) seedProduct(name, price string, stock int) kernel.UUID {
	seeded, err := product.NewProduct(kernel.NewUUID(), name, kernel.MustMoney(price), stock)
	suite.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded.ID()
}
