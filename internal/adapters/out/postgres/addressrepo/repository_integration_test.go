package addressrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/addressrepo"
	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type AddressRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *addressrepo.GormAddressRepository
}

func (suite *AddressRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&addressrepo.CustomerAddressDTO{})
	suite.Require().NoError(err)

	suite.repo = addressrepo.NewGormAddressRepository(db, &mockAggregateTracker{})
}

func (suite *AddressRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AddressRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customer_addresses CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *AddressRepositoryTestSuite) newAddress(customerID kernel.UUID) *address.CustomerAddress {
	a, err := address.NewCustomerAddress(
		kernel.NewUUID(), customerID,
		"12 High Street", "CA", "Springfield", "90210", "555-0101",
	)
	suite.Require().NoError(err)
	return a
}

func (suite *AddressRepositoryTestSuite) TestAddAndGetByCustomer_RoundTripsAggregate() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	a := suite.newAddress(customerID)

	err := suite.repo.Add(ctx, a)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(a.ID(), restored.ID())
	suite.Equal(customerID, restored.CustomerID())
	suite.Equal("12 High Street", restored.Address())
	suite.Equal("Springfield", restored.City())
}

func (suite *AddressRepositoryTestSuite) TestAdd_SecondAddressForCustomerRejected() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	err := suite.repo.Add(ctx, suite.newAddress(customerID))
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, suite.newAddress(customerID))
	suite.Require().Error(err)
}

func (suite *AddressRepositoryTestSuite) TestGetByCustomer_NotFound() {
	_, err := suite.repo.GetByCustomer(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryTestSuite) TestUpdate_PersistsPatchedFields() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	a := suite.newAddress(customerID)
	suite.Require().NoError(suite.repo.Add(ctx, a))

	newCity := "Shelbyville"
	err := a.Update(address.Patch{City: &newCity})
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, a)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal("Shelbyville", restored.City())
	suite.Equal("12 High Street", restored.Address())
}

func (suite *AddressRepositoryTestSuite) TestUpdate_NotFound() {
	a := suite.newAddress(kernel.NewUUID())

	err := suite.repo.Update(context.Background(), a)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryTestSuite) TestDelete_RemovesAddress() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newAddress(customerID)))

	err := suite.repo.Delete(ctx, customerID)
	suite.Require().NoError(err)

	_, err = suite.repo.GetByCustomer(ctx, customerID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAddressRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AddressRepositoryTestSuite))
}
