package customerrepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// CustomerRepositoryIntegrationTestSuite runs the repository against a real PostgreSQL.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = customerrepo.NewGormCustomerRepository(suite.database.DB)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(email string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Lovelace", email)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	c := suite.newCustomer("ada@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())
	suite.Equal("Ada Lovelace", got.Name())
	suite.Equal("ada@example.com", got.Email())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("ada@example.com")))

	err := suite.repository.Add(ctx, suite.newCustomer("ada@example.com"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistent() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Nil(got)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestFindByEmail() {
	ctx := context.Background()
	c := suite.newCustomer("ada@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.FindByEmail(ctx, " ADA@example.com")
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())

	_, err = suite.repository.FindByEmail(ctx, "grace@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
