package packagelogrepo_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/packagelogrepo"
	"mailroom/internal/adapters/out/postgres/pgtest"
	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type PackageLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *packagelogrepo.GormPackageLogRepository
}

func (suite *PackageLogRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.repository = packagelogrepo.NewGormPackageLogRepository(db)
}

func (suite *PackageLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *PackageLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PackageLogRepositoryIntegrationTestSuite) entry(
	packageID kernel.UUID,
	userID *kernel.UUID,
	action audit.Action,
	at time.Time,
) audit.Entry {
	e, err := audit.NewEntry(kernel.NewUUID(), packageID, userID, action, "details", at)
	suite.Require().NoError(err)
	return e
}

func (suite *PackageLogRepositoryIntegrationTestSuite) TestListByPackage_ChronologicalOrder() {
	ctx := context.Background()
	packageID := kernel.NewUUID()
	userID := kernel.NewUUID()
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	collected := suite.entry(packageID, &userID, audit.Collected, base.Add(2*time.Hour))
	created := suite.entry(packageID, &userID, audit.Created, base)
	notified := suite.entry(packageID, nil, audit.Notified, base.Add(time.Hour))
	other := suite.entry(kernel.NewUUID(), &userID, audit.Created, base)
	for _, e := range []audit.Entry{collected, created, notified, other} {
		suite.Require().NoError(suite.repository.Append(ctx, e))
	}

	entries, err := suite.repository.ListByPackage(ctx, packageID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(audit.Created, entries[0].Action())
	suite.Equal(audit.Notified, entries[1].Action())
	suite.Nil(entries[1].UserID())
	suite.Equal(audit.Collected, entries[2].Action())
	suite.Require().NotNil(entries[2].UserID())
	suite.True(entries[2].UserID().IsEqual(userID))
	suite.True(entries[0].CreatedAt().Equal(base))
}

func (suite *PackageLogRepositoryIntegrationTestSuite) TestListByPackage_Empty() {
	entries, err := suite.repository.ListByPackage(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *PackageLogRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	packageID := kernel.NewUUID()
	reader := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Append(ctx, suite.entry(packageID, &reader, audit.Read, time.Now())))

	seen, err := suite.repository.Exists(ctx, packageID, audit.Read, &reader)
	suite.Require().NoError(err)
	suite.True(seen)

	other := kernel.NewUUID()
	seen, err = suite.repository.Exists(ctx, packageID, audit.Read, &other)
	suite.Require().NoError(err)
	suite.False(seen)

	seen, err = suite.repository.Exists(ctx, packageID, audit.Read, nil)
	suite.Require().NoError(err)
	suite.True(seen, "nil user matches any user")

	seen, err = suite.repository.Exists(ctx, packageID, audit.Notified, nil)
	suite.Require().NoError(err)
	suite.False(seen)
}

func TestPackageLogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PackageLogRepositoryIntegrationTestSuite))
}
