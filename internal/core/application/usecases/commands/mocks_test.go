package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAllPendingReceivedBefore(ctx context.Context, before time.Time) ([]*parcel.Package, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]*parcel.Package), args.Error(1)
}

type MockPackageLogRepository struct{ mock.Mock }

func (m *MockPackageLogRepository) Append(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPackageLogRepository) ListByPackage(ctx context.Context, packageID kernel.UUID) ([]audit.Entry, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).([]audit.Entry), args.Error(1)
}

func (m *MockPackageLogRepository) Exists(
	ctx context.Context,
	packageID kernel.UUID,
	action audit.Action,
	userID *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, packageID, action, userID)
	return args.Bool(0), args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *mall.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*mall.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mall.Store), args.Error(1)
}

type MockShoppingRepository struct{ mock.Mock }

func (m *MockShoppingRepository) Add(ctx context.Context, s *mall.Shopping) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShoppingRepository) Get(ctx context.Context, id kernel.UUID) (*mall.Shopping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mall.Shopping), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *identity.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *identity.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}

// MockUoW implements every unit of work interface the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) PackageLogRepository() ports.PackageLogRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageLogRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockUoW) ShoppingRepository() ports.ShoppingRepository {
	args := m.Called()
	return args.Get(0).(ports.ShoppingRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockMallUoWFactory struct{ mock.Mock }

func (m *MockMallUoWFactory) Create() commands.MallUoW {
	args := m.Called()
	return args.Get(0).(commands.MallUoW)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.IdentityUoW)
}

type MockEvidenceStorage struct{ mock.Mock }

func (m *MockEvidenceStorage) Save(
	ctx context.Context,
	kind ports.EvidenceKind,
	packageID kernel.UUID,
	file ports.EvidenceFile,
) (string, error) {
	args := m.Called(ctx, kind, packageID, file)
	return args.String(0), args.Error(1)
}

func (m *MockEvidenceStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockEvidenceStorage) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(session *identity.Session) (string, error) {
	args := m.Called(session)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Parse(token string) (ports.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

func newUser(t *testing.T, role identity.Role, storeID *kernel.UUID) *identity.User {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), "Test User", role.String()+"@mall.com", "hash", role, storeID, time.Now())
	require.NoError(t, err)
	return user
}

func actorOf(t *testing.T, role identity.Role) identity.Actor {
	t.Helper()
	if role == identity.Loja {
		storeID := kernel.NewUUID()
		return newUser(t, role, &storeID).Actor()
	}
	return newUser(t, role, nil).Actor()
}

func newIntake(storeID kernel.UUID) parcel.Intake {
	return parcel.Intake{
		StoreID:    storeID,
		Code:       "BR123456789",
		Courier:    "Correios",
		ReceivedAt: time.Now().Add(-time.Hour),
		PostalType: parcel.Registrada,
		VolumeType: parcel.Caixa,
	}
}

func newPendingPackage(t *testing.T, storeID kernel.UUID) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(kernel.NewUUID(), newIntake(storeID), time.Now())
	require.NoError(t, err)
	return pkg
}

func entryWith(action audit.Action) any {
	return mock.MatchedBy(func(e audit.Entry) bool { return e.Action() == action })
}
