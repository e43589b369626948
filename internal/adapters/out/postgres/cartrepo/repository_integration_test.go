package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"compras/internal/adapters/out/postgres/cartrepo"
	"compras/internal/adapters/out/postgres/catalogrepo"
	"compras/internal/adapters/out/postgres/migrations"
	"compras/internal/core/domain/model/cart"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CartRepositoryIntegrationTestSuite verifies cart persistence and the
// catalog price lookup against a real PostgreSQL schema.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	catalog    *catalogrepo.GormProductCatalog
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.Exec(
		"INSERT INTO productos (id, nombre, precio_base, activo) VALUES (5, 'Taza', 149.90, TRUE), (6, 'Playera', 220.00, FALSE)").Error)
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE carrito_items, carritos RESTART IDENTITY CASCADE").Error)

	suite.repository = cartrepo.NewGormCartRepository(suite.db)
	suite.catalog = catalogrepo.NewGormProductCatalog(suite.db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) newOpenCart(userID int64) *cart.Cart {
	c, err := cart.NewCart(userID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetOpenByUser_LoadsItems() {
	ctx := context.Background()
	c := suite.newOpenCart(7)

	item, err := cart.NewItem(c.ID(), 5, 2, decimal.RequireFromString("149.90"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))

	loaded, err := suite.repository.GetOpenByUser(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(c.ID(), loaded.ID())
	suite.True(loaded.IsOpen())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(2, loaded.Items()[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAddItem_RejectsDuplicateProductLine() {
	ctx := context.Background()
	c := suite.newOpenCart(7)

	item, err := cart.NewItem(c.ID(), 5, 2, decimal.RequireFromString("149.90"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))

	// One line per product per cart; merges go through UpdateItem.
	dup, err := cart.NewItem(c.ID(), 5, 1, decimal.RequireFromString("149.90"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.AddItem(ctx, dup), gorm.ErrDuplicatedKey)
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetOpenByUser_PrefersNewest() {
	ctx := context.Background()
	suite.newOpenCart(7)
	second := suite.newOpenCart(7)

	loaded, err := suite.repository.GetOpenByUser(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(second.ID(), loaded.ID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetOpenByUser_IgnoresClosed() {
	ctx := context.Background()
	c := suite.newOpenCart(7)

	suite.Require().NoError(c.Close(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	_, err := suite.repository.GetOpenByUser(ctx, 7)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdateItem_PersistsQuantity() {
	ctx := context.Background()
	c := suite.newOpenCart(7)

	item, err := cart.NewItem(c.ID(), 5, 2, decimal.RequireFromString("149.90"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))

	suite.Require().NoError(item.SetQuantity(9, time.Now().UTC()))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item))

	loaded, err := suite.repository.GetItemByID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(9, loaded.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveItem() {
	ctx := context.Background()
	c := suite.newOpenCart(7)

	item, err := cart.NewItem(c.ID(), 5, 1, decimal.RequireFromString("149.90"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(ctx, item))

	suite.Require().NoError(suite.repository.RemoveItem(ctx, item.ID()))

	_, err = suite.repository.GetItemByID(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestCatalog_ActivePrice() {
	price, err := suite.catalog.GetActivePrice(context.Background(), 5)
	suite.Require().NoError(err)
	suite.True(price.Equal(decimal.RequireFromString("149.90")))
}

func (suite *CartRepositoryIntegrationTestSuite) TestCatalog_InactiveProduct() {
	_, err := suite.catalog.GetActivePrice(context.Background(), 6)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
