package queries_test

import (
	"context"
	"testing"
	"time"

	"compras/internal/adapters/out/postgres/migrations"
	"compras/internal/core/application/usecases/queries"
	"compras/internal/pkg/cache"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOperatorsQueryHandlerIntegrationTestSuite verifies the operators listing
// against the real usuarios schema.
type GetOperatorsQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) SetupSuite() {
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
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE usuarios RESTART IDENTITY CASCADE").Error)

	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO usuarios (nombre, correo, rol_id, esta_activo) VALUES
			('Operador Uno', 'uno@example.com', 5, TRUE),
			('Operador Dos', 'dos@example.com', 5, FALSE),
			('Supervisor',   'sup@example.com', 9, TRUE),
			(NULL, NULL, 5, TRUE)
	`).Error)
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) newHandler() queries.GetOperatorsQueryHandler {
	c := cache.New[string, []queries.GetOperatorsQueryResponse](2 * time.Minute)
	return queries.NewGetOperatorsQueryHandler(suite.db, c)
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) TestHandle_ListsRoleMembers() {
	handler := suite.newHandler()

	operators, err := handler.Handle(context.Background(), queries.NewGetOperatorsQuery(5, false, 0))
	suite.Require().NoError(err)

	suite.Require().Len(operators, 3)
	suite.Assert().Equal(int64(4), operators[0].UserID)
	suite.Assert().Equal("", operators[0].Name)
	suite.Assert().Equal("Operador Dos", operators[1].Name)
	suite.Assert().Equal("dos@example.com", operators[1].Email)
	suite.Assert().Equal("Operador Uno", operators[2].Name)
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) TestHandle_ActiveOnlyExcludesInactive() {
	handler := suite.newHandler()

	operators, err := handler.Handle(context.Background(), queries.NewGetOperatorsQuery(5, true, 0))
	suite.Require().NoError(err)

	suite.Require().Len(operators, 2)
	for _, op := range operators {
		suite.Assert().NotEqual("Operador Dos", op.Name)
	}
}

func (suite *GetOperatorsQueryHandlerIntegrationTestSuite) TestHandle_CachesResult() {
	handler := suite.newHandler()
	query := queries.NewGetOperatorsQuery(5, true, 0)

	first, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(first, 2)

	// Rows deleted after the first call are still served from the cache.
	suite.Require().NoError(suite.db.Exec("DELETE FROM usuarios").Error)

	second, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Assert().Equal(first, second)
}

func TestGetOperatorsQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOperatorsQueryHandlerIntegrationTestSuite))
}
