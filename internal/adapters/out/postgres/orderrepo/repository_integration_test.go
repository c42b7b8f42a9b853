package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newLine(quantity int, price string) *order.Line {
	money, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity, money)
	suite.Require().NoError(err)
	return line
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_KeepsLinesInOrder() {
	ctx := context.Background()
	lines := []*order.Line{
		suite.newLine(3, "10"),
		suite.newLine(1, "20"),
		suite.newLine(2, "0.99"),
	}
	original, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), lines)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), got.ID())
	suite.Equal(original.CustomerID(), got.CustomerID())
	suite.WithinDuration(original.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.Equal("51.98", got.Total().String())

	gotLines := got.Lines()
	suite.Require().Len(gotLines, 3)
	for i, line := range lines {
		suite.Equal(line.ID(), gotLines[i].ID())
		suite.Equal(line.ProductID(), gotLines[i].ProductID())
		suite.Equal(line.Quantity(), gotLines[i].Quantity())
		suite.True(line.UnitPrice().IsEqual(gotLines[i].UnitPrice()))
	}

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderLineDTO{}, 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_WritesNothingMore() {
	ctx := context.Background()
	original, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{suite.newLine(1, "1")})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	again, err := order.NewOrder(original.ID(), kernel.NewUUID(), []*order.Line{suite.newLine(1, "1")})
	suite.Require().NoError(err)
	suite.Require().Error(suite.repository.Add(ctx, again))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderLineDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Nil(got)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
