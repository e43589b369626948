package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"compras/internal/adapters/out/postgres/deliveryrepo"
	"compras/internal/adapters/out/postgres/migrations"
	"compras/internal/adapters/out/postgres/orderrepo"
	"compras/internal/adapters/out/postgres/workflowrepo"
	"compras/internal/core/domain/model/delivery"
	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DeliveryRepositoryIntegrationTestSuite verifies the one-delivery-per-order
// invariant and the breadcrumb trail against a real PostgreSQL schema.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository

	process *workflow.Process
	created *workflow.State
	orderID int64
	suffix  int
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(migrations.Up(db))

	workflows := workflowrepo.NewGormWorkflowRepository(db)
	suite.process, err = workflows.GetProcessByCode(ctx, workflow.ProcessCodeOrders)
	suite.Require().NoError(err)
	suite.created, err = workflows.GetStateByCode(ctx, suite.process.ID(), workflow.StateCodeCreated)
	suite.Require().NoError(err)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE entrega_eventos, entregas, ordenes RESTART IDENTITY CASCADE").Error)

	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db)
	suite.orderID = suite.insertOrder()
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) insertOrder() int64 {
	suite.suffix++
	folio, err := order.NewFolio(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC), 1000+suite.suffix)
	suite.Require().NoError(err)

	o, err := order.NewOrder(7, folio, decimal.RequireFromString("99.00"),
		suite.process, suite.created, order.PaymentMethodCash, nil, nil, "tok-x", time.Now().UTC())
	suite.Require().NoError(err)

	orders := orderrepo.NewGormOrderRepository(suite.db)
	suite.Require().NoError(orders.Add(context.Background(), o))
	return o.ID()
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestEnsureForOrder_CreatesPending() {
	ctx := context.Background()

	dlv, err := suite.repository.EnsureForOrder(ctx, suite.orderID)
	suite.Require().NoError(err)

	suite.Positive(dlv.ID())
	suite.Equal(delivery.StatusPending, dlv.Status())
	suite.Nil(dlv.CourierID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestEnsureForOrder_ReturnsExisting() {
	ctx := context.Background()

	first, err := suite.repository.EnsureForOrder(ctx, suite.orderID)
	suite.Require().NoError(err)

	second, err := suite.repository.EnsureForOrder(ctx, suite.orderID)
	suite.Require().NoError(err)
	suite.Equal(first.ID(), second.ID())

	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).
		Where("orden_id = ?", suite.orderID).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_Missing() {
	_, err := suite.repository.GetByOrderID(context.Background(), 424242)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndCourier() {
	ctx := context.Background()

	dlv, err := suite.repository.EnsureForOrder(ctx, suite.orderID)
	suite.Require().NoError(err)

	courierID := int64(33)
	suite.Require().NoError(dlv.MarkEnRoute(&courierID))
	suite.Require().NoError(suite.repository.Update(ctx, dlv))

	loaded, err := suite.repository.GetByOrderID(ctx, suite.orderID)
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusEnRoute, loaded.Status())
	suite.Require().NotNil(loaded.CourierID())
	suite.EqualValues(33, *loaded.CourierID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddEvent_AppendsBreadcrumb() {
	ctx := context.Background()

	dlv, err := suite.repository.EnsureForOrder(ctx, suite.orderID)
	suite.Require().NoError(err)

	lat := decimal.RequireFromString("19.432608")
	lng := decimal.RequireFromString("-99.133209")
	event, err := delivery.NewEvent(dlv.ID(), suite.created.ID(), &lat, &lng, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddEvent(ctx, event))
	suite.Positive(event.ID())

	var rows []deliveryrepo.EventDTO
	suite.Require().NoError(suite.db.Find(&rows, "entrega_id = ?", dlv.ID()).Error)
	suite.Require().Len(rows, 1)
	suite.Require().NotNil(rows[0].Lat)
	suite.True(rows[0].Lat.Equal(lat))
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
