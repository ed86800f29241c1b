package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) createOrder(
	customerID kernel.UUID,
	items []order.LineItem,
) *order.Order {
	shipping, err := order.NewShippingInfo("12 High Street", "CA", "Springfield", "90210", "555-0101")
	suite.Require().NoError(err)

	cost, err := order.NewCostInfo(249.99, 20.00, 15.00, 284.99)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, items,
		shipping, order.NewPaymentInfo("card", order.PaymentStatusPending, "", 284.99, nil), cost,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) newItem(name string, quantity int) order.LineItem {
	item, err := order.NewLineItem(kernel.NewUUID(), name, 99.50, quantity, "https://img.example/p.png")
	suite.Require().NoError(err)
	return item
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnOrders() {
	customerID := kernel.NewUUID()
	own := suite.createOrder(customerID, []order.LineItem{suite.newItem("Walnut desk", 1)})
	suite.createOrder(kernel.NewUUID(), []order.LineItem{suite.newItem("Oak chair", 2)})

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ID)
	suite.Equal("Processing", result[0].Status)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_GroupsLineItemsUnderOrder() {
	customerID := kernel.NewUUID()
	o := suite.createOrder(customerID, []order.LineItem{
		suite.newItem("Walnut desk", 1),
		suite.newItem("Oak chair", 4),
	})

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(o.ID(), result[0].ID)
	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Walnut desk", result[0].Items[0].Name)
	suite.Equal("Oak chair", result[0].Items[1].Name)
	suite.Equal(4, result[0].Items[1].Quantity)
	suite.InEpsilon(99.50, result[0].Items[0].UnitPrice, 0.0001)
	suite.InEpsilon(284.99, result[0].TotalCost, 0.0001)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_MultipleOrdersComeBackSeparately() {
	customerID := kernel.NewUUID()
	first := suite.createOrder(customerID, []order.LineItem{suite.newItem("Walnut desk", 1)})
	second := suite.createOrder(customerID, []order.LineItem{suite.newItem("Oak chair", 2)})

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	ids := map[kernel.UUID]bool{result[0].ID: true, result[1].ID: true}
	suite.True(ids[first.ID()])
	suite.True(ids[second.ID()])
	suite.Len(result[0].Items, 1)
	suite.Len(result[1].Items, 1)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ReflectsStatusChanges() {
	customerID := kernel.NewUUID()
	o := suite.createOrder(customerID, []order.LineItem{suite.newItem("Walnut desk", 1)})

	suite.Require().NoError(o.Ship())
	err := suite.orderRepo.UpdateStatusFrom(context.Background(), o, order.Processing)
	suite.Require().NoError(err)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Shipped", result[0].Status)
	suite.Nil(result[0].DeliveredAt)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerOrdersQuery constructor")
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
