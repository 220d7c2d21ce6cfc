package queries_test

import (
	"context"
	"time"

	postgresadapter "mailroom/internal/adapters/out/postgres"
	"mailroom/internal/adapters/out/postgres/pgtest"
	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// dbSuite owns the container shared by the read model suites and offers helpers that
// write fixtures through the real repositories.
type dbSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	uow       ports.UnitOfWork
}

func (s *dbSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.container = container
	s.db = db
	s.uow = postgresadapter.NewGormUnitOfWorkFactory(db).Create()
}

func (s *dbSuite) SetupTest() {
	s.Require().NoError(pgtest.Truncate(s.db))
}

func (s *dbSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *dbSuite) shopping(name string) *mall.Shopping {
	sh, err := mall.NewShopping(kernel.NewUUID(), name, "Rua das Flores, 100")
	s.Require().NoError(err)
	s.Require().NoError(s.uow.ShoppingRepository().Add(context.Background(), sh))
	return sh
}

func (s *dbSuite) store(name string, shopping *mall.Shopping) *mall.Store {
	st, err := mall.NewStore(kernel.NewUUID(), name, shopping.ID())
	s.Require().NoError(err)
	s.Require().NoError(s.uow.StoreRepository().Add(context.Background(), st))
	return st
}

func (s *dbSuite) user(name, email string, role identity.Role, store *mall.Store) *identity.User {
	var storeID *kernel.UUID
	if store != nil {
		id := store.ID()
		storeID = &id
	}
	u, err := identity.NewUser(kernel.NewUUID(), name, email, "hash", role, storeID, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.uow.UserRepository().Add(context.Background(), u))
	return u
}

// pkg stores a package received at receivedAt and moved to status.
func (s *dbSuite) pkg(store *mall.Store, code string, receivedAt time.Time, status parcel.Status) *parcel.Package {
	p, err := parcel.NewPackage(kernel.NewUUID(), parcel.Intake{
		StoreID:      store.ID(),
		Code:         code,
		Courier:      "Correios",
		ReceivedAt:   receivedAt,
		PostalType:   parcel.Registrada,
		VolumeType:   parcel.Caixa,
		Observations: "Frágil",
	}, receivedAt)
	s.Require().NoError(err)

	switch status {
	case parcel.Collected:
		s.collect(p)
	case parcel.Returned:
		s.Require().NoError(p.Return())
	case parcel.Deleted:
		s.Require().NoError(p.Delete())
	case parcel.Pending, parcel.UnknownStatus:
	}

	s.Require().NoError(s.uow.PackageRepository().Add(context.Background(), p))
	return p
}

func (s *dbSuite) collect(p *parcel.Package) {
	cpf, err := kernel.NewCPF("12345678901")
	s.Require().NoError(err)
	evidence, err := parcel.NewEvidence(
		"Maria Santos", cpf, "photos/p.png", "signatures/s.png",
		time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	s.Require().NoError(p.Collect(evidence))
}

func (s *dbSuite) log(p *parcel.Package, user *identity.User, action audit.Action, details string, at time.Time) {
	var userID *kernel.UUID
	if user != nil {
		id := user.ID()
		userID = &id
	}
	entry, err := audit.NewEntry(kernel.NewUUID(), p.ID(), userID, action, details, at)
	s.Require().NoError(err)
	s.Require().NoError(s.uow.PackageLogRepository().Append(context.Background(), entry))
}
