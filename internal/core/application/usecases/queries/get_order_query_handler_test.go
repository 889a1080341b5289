package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container   *tcpostgres.PostgresContainer
	db          *gorm.DB
	getHandler  queries.GetOrderQueryHandler
	listHandler queries.GetOrdersQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) createOrder(items ...order.LineItem) *order.Order {
	orderDate, err := order.NewOrderDate(time.Now())
	suite.Require().NoError(err)
	deliveryDate, err := order.NewDeliveryDate(time.Now().AddDate(0, 0, 3))
	suite.Require().NoError(err)

	if len(items) == 0 {
		item, itemErr := order.NewLineItem(kernel.NewProductID(), 2, "Mechanical keyboard", "", 10.00)
		suite.Require().NoError(itemErr)
		items = []order.LineItem{item}
	}

	aggregate, err := order.NewOrder(
		kernel.NewOrderID(), kernel.NewCustomerID(), orderDate, deliveryDate, items,
	)
	suite.Require().NoError(err)
	aggregate.ClearEvents()
	suite.Require().NoError(suite.orderRepo.Save(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrder_ReturnsFullSnapshot() {
	item1, err := order.NewLineItem(kernel.NewProductID(), 2, "Mechanical keyboard", "Tenkeyless", 10.00)
	suite.Require().NoError(err)
	item2, err := order.NewLineItem(kernel.NewProductID(), 3, "USB cable", "", 4.50)
	suite.Require().NoError(err)
	aggregate := suite.createOrder(item1, item2)

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), resp.ID)
	suite.Equal(aggregate.CustomerID(), resp.CustomerID)
	suite.Equal("Pending", resp.Status)
	suite.Equal(int64(1), resp.Version)
	suite.Require().Len(resp.Items, 2)
	suite.InDelta(20.00, resp.Items[0].Total, 0.001)
	suite.InDelta(13.50, resp.Items[1].Total, 0.001)
	suite.InDelta(33.50, resp.Price, 0.001)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_Missing_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_InvalidQuery_ReturnsError() {
	_, err := suite.getHandler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *OrderQueriesTestSuite) TestGetOrders_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.listHandler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_ReturnsAllSortedByID() {
	for range 3 {
		suite.createOrder()
	}

	result, err := suite.listHandler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	for i := range len(result) - 1 {
		suite.Less(result[i].ID.String(), result[i+1].ID.String())
	}
	for _, resp := range result {
		suite.Len(resp.Items, 1)
		suite.InDelta(20.00, resp.Price, 0.001)
	}
}

func (suite *OrderQueriesTestSuite) TestGetOrders_StatusFilter() {
	confirmed := suite.createOrder()
	suite.Require().NoError(confirmed.Confirm())
	confirmed.ClearEvents()
	suite.Require().NoError(suite.orderRepo.Save(context.Background(), confirmed))

	suite.createOrder() // stays pending

	query, err := queries.NewGetOrdersByStatusQuery(order.Confirmed)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(confirmed.ID(), result[0].ID)
	suite.Equal("Confirmed", result[0].Status)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_InvalidStatusFilter() {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	suite.Require().Error(err)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
