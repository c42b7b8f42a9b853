package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite tests transaction boundaries of the GORM
// unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(name string, quantity int) *product.Product {
	price, err := kernel.MoneyFromString("10")
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), name, price, quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(context.Background(), p))
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(productID kernel.UUID, quantity int) *order.Order {
	price, err := kernel.MoneyFromString("10")
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), productID, quantity, price)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{line})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) stock(id kernel.UUID) int {
	found, err := suite.factory.Create().ProductRepository().FindAllByID(context.Background(), []kernel.UUID{id})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	return found[0].Quantity()
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction, "Rollback after commit is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderAndStock() {
	ctx := context.Background()
	p := suite.seedProduct("Keyboard", 5)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	found, err := uow.ProductRepository().FindAllByID(ctx, []kernel.UUID{p.ID()})
	suite.Require().NoError(err)
	suite.Require().NoError(found[0].Withdraw(3))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(p.ID(), 3)))
	_, err = uow.ProductRepository().UpdateQuantity(ctx, []product.QuantityUpdate{found[0].QuantityUpdate()})
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(2, suite.stock(p.ID()))
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FailedStockWriteRollsBackOrder() {
	ctx := context.Background()
	p := suite.seedProduct("Keyboard", 5)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(p.ID(), 1)))
	_, err := uow.ProductRepository().UpdateQuantity(ctx, []product.QuantityUpdate{
		{ID: p.ID(), Quantity: 4, Version: 7},
	})
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(5, suite.stock(p.ID()))
	suite.Zero(suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoriesShareTransaction() {
	ctx := context.Background()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "ada@example.com")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	_, err = uow.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err, "Uncommitted row is visible inside the transaction")

	_, err = suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Uncommitted row is invisible outside")

	suite.Require().NoError(uow.Rollback(ctx))
}

// Two placements for the same product: the second one's FindAllByID waits
// for the first to commit and then sees the decremented stock.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FindAllByIDSerializesConcurrentOrders() {
	ctx := context.Background()
	p := suite.seedProduct("Keyboard", 5)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.ProductRepository().FindAllByID(ctx, []kernel.UUID{p.ID()})
	suite.Require().NoError(err)

	type result struct {
		products []*product.Product
		err      error
	}
	secondRead := make(chan result, 1)
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	go func() {
		found, findErr := second.ProductRepository().FindAllByID(ctx, []kernel.UUID{p.ID()})
		secondRead <- result{products: found, err: findErr}
	}()

	select {
	case <-secondRead:
		suite.Fail("second reader should block while the first transaction holds the lock")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked[0].Withdraw(4))
	_, err = first.ProductRepository().UpdateQuantity(ctx, []product.QuantityUpdate{locked[0].QuantityUpdate()})
	suite.Require().NoError(err)
	suite.Require().NoError(first.Commit(ctx))

	var got result
	select {
	case got = <-secondRead:
	case <-time.After(10 * time.Second):
		suite.FailNow("second reader never unblocked")
	}
	suite.Require().NoError(got.err)
	suite.Require().Len(got.products, 1)
	suite.Equal(1, got.products[0].Quantity())
	suite.Equal(int64(1), got.products[0].Version())
	suite.Require().ErrorIs(got.products[0].Withdraw(4), product.ErrNotEnoughStock)
	suite.Require().NoError(second.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
