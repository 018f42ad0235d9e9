package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	address, err := kernel.NewAddress("350 5th Ave", "New York", "NY", "10001", "US")
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), "Blue Widget", kernel.MustMoney("19.99"), 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Line{line},
		address,
		kernel.MustMoney("39.98"),
		kernel.MustMoney("3.55"),
		kernel.MustMoney("10.00"),
		"credit_card",
		"pay_9c1f",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.True(restored.UserID().IsEqual(testOrder.UserID()))
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(order.PaymentCompleted, restored.PaymentStatus())
	suite.Equal(order.ReturnNone, restored.ReturnStatus())
	suite.Equal("53.53", restored.Total().String())
	suite.Equal(1, restored.Version())
	suite.Require().Len(restored.Lines(), 1)
	suite.Equal("Blue Widget", restored.Lines()[0].ProductName())
	suite.Equal(2, restored.Lines()[0].Quantity())
	suite.Empty(restored.Notifications())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleChanges() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	processing := order.Processing
	suite.Require().NoError(testOrder.ChangeStatus(&processing, nil, "", "", order.StrictTransitions))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, restored.Status())
	suite.Equal(2, restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two copies loaded at the same version race the same row.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	processing := order.Processing
	suite.Require().NoError(first.ChangeStatus(&processing, nil, "", "", order.StrictTransitions))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	cancelled := order.Cancelled
	suite.Require().NoError(second.ChangeStatus(&cancelled, nil, "", "", order.StrictTransitions))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_FiltersAndOrders() {
	ctx := context.Background()
	first := suite.createTestOrder()
	second := suite.createTestOrder()
	other := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByUser(ctx, first.UserID())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FindsMatching() {
	ctx := context.Background()
	pending := suite.createTestOrder()
	advanced := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, advanced))

	processing := order.Processing
	suite.Require().NoError(advanced.ChangeStatus(&processing, nil, "", "", order.StrictTransitions))
	suite.Require().NoError(suite.repository.Update(ctx, advanced))

	orders, err := suite.repository.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(pending.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Zero(lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_UnknownOrder_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
