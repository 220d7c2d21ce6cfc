package cmd

import (
	"log/slog"

	httpadapter "mailroom/internal/adapters/in/http"
	"mailroom/internal/adapters/out/auth"
	"mailroom/internal/adapters/out/filestore"
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived adapters and builds use case handlers on demand.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	storage    *filestore.LocalStorage
	hasher     auth.BcryptHasher
	issuer     auth.JWTIssuer
	logger     *slog.Logger
}

// NewCompositionRoot opens the evidence storage and the token issuer described by config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	storage, err := filestore.NewLocalStorage(config.StorageDir)
	if err != nil {
		return CompositionRoot{}, err
	}
	issuer, err := auth.NewJWTIssuer(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		storage:    storage,
		hasher:     auth.NewBcryptHasher(0),
		issuer:     issuer,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) mallUoWFactory() commands.MallUoWFactory {
	return FuncMallUoWFactory(func() commands.MallUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

// CreateLoginCommandHandler wires a LoginCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.identityUoWFactory(), c.hasher, c.issuer, c.config.TokenTTL)
}

// CreateLogoutCommandHandler wires a LogoutCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.identityUoWFactory())
}

// CreateCreateUserCommandHandler wires a CreateUserCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.identityUoWFactory(), c.hasher)
}

// CreateBootstrapAdminCommandHandler wires a BootstrapAdminCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	return commands.NewBootstrapAdminCommandHandler(c.identityUoWFactory(), c.hasher)
}

// CreateCreateShoppingCommandHandler wires a CreateShoppingCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateCreateShoppingCommandHandler() commands.CreateShoppingCommandHandler {
	return commands.NewCreateShoppingCommandHandler(c.mallUoWFactory())
}

// CreateCreateStoreCommandHandler wires a CreateStoreCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.mallUoWFactory())
}

// CreateCreatePackageCommandHandler wires a CreatePackageCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.packageUoWFactory())
}

// CreateCollectPackageCommandHandler wires a CollectPackageCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateCollectPackageCommandHandler() commands.CollectPackageCommandHandler {
	return commands.NewCollectPackageCommandHandler(c.packageUoWFactory(), c.storage, c.logger)
}

// CreateReturnPackageCommandHandler wires a ReturnPackageCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateReturnPackageCommandHandler() commands.ReturnPackageCommandHandler {
	return commands.NewReturnPackageCommandHandler(c.packageUoWFactory())
}

// CreateDeletePackageCommandHandler wires a DeletePackageCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.packageUoWFactory())
}

// CreateMarkPackageReadCommandHandler wires a MarkPackageReadCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateMarkPackageReadCommandHandler() commands.MarkPackageReadCommandHandler {
	return commands.NewMarkPackageReadCommandHandler(c.packageUoWFactory())
}

// CreateNotifyPendingPackagesCommandHandler wires a NotifyPendingPackagesCommandHandler to the shared dependencies.
func (c *CompositionRoot) CreateNotifyPendingPackagesCommandHandler() commands.NotifyPendingPackagesCommandHandler {
	return commands.NewNotifyPendingPackagesCommandHandler(c.packageUoWFactory())
}

// CreateAuthenticateQueryHandler reads users and sessions outside any transaction.
func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewAuthenticateQueryHandler(c.issuer, uow.UserRepository(), uow.SessionRepository())
}

// CreateGetMeQueryHandler wires a GetMeQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateGetMeQueryHandler() queries.GetMeQueryHandler {
	return queries.NewGetMeQueryHandler(c.gormDB)
}

// CreateListUsersQueryHandler wires a ListUsersQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

// CreateListShoppingsQueryHandler wires a ListShoppingsQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateListShoppingsQueryHandler() queries.ListShoppingsQueryHandler {
	return queries.NewListShoppingsQueryHandler(c.gormDB)
}

// CreateListStoresQueryHandler wires a ListStoresQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.gormDB)
}

// CreateGetStoreQueryHandler wires a GetStoreQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gormDB)
}

// CreateListPackagesQueryHandler wires a ListPackagesQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.gormDB)
}

// CreateGetPackageQueryHandler wires a GetPackageQueryHandler to the shared dependencies.
func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	login := c.CreateLoginCommandHandler()
	logout := c.CreateLogoutCommandHandler()
	createUser := c.CreateCreateUserCommandHandler()
	createShopping := c.CreateCreateShoppingCommandHandler()
	createStore := c.CreateCreateStoreCommandHandler()
	createPackage := c.CreateCreatePackageCommandHandler()
	collectPackage := c.CreateCollectPackageCommandHandler()
	returnPackage := c.CreateReturnPackageCommandHandler()
	deletePackage := c.CreateDeletePackageCommandHandler()
	markPackageRead := c.CreateMarkPackageReadCommandHandler()

	return httpadapter.NewServer(
		httpadapter.Commands{
			Login:           &login,
			Logout:          &logout,
			CreateUser:      &createUser,
			CreateShopping:  &createShopping,
			CreateStore:     &createStore,
			CreatePackage:   &createPackage,
			CollectPackage:  &collectPackage,
			ReturnPackage:   &returnPackage,
			DeletePackage:   &deletePackage,
			MarkPackageRead: &markPackageRead,
		},
		httpadapter.Queries{
			Authenticate:  c.CreateAuthenticateQueryHandler(),
			GetMe:         c.CreateGetMeQueryHandler(),
			ListUsers:     c.CreateListUsersQueryHandler(),
			ListShoppings: c.CreateListShoppingsQueryHandler(),
			ListStores:    c.CreateListStoresQueryHandler(),
			GetStore:      c.CreateGetStoreQueryHandler(),
			ListPackages:  c.CreateListPackagesQueryHandler(),
			GetPackage:    c.CreateGetPackageQueryHandler(),
		},
		c.storage,
		c.logger,
	)
}

// CreateJobManager schedules the pending reminder job when REMINDER_CRON is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	notify := c.CreateNotifyPendingPackagesCommandHandler()
	return jobs.NewJobManager(&notify, jobs.ReminderConfig{
		Schedule: c.config.ReminderCron,
		After:    c.config.ReminderAfter,
	}, c.logger)
}

// FuncPackageUoWFactory adapts a function to commands.PackageUoWFactory.
type FuncPackageUoWFactory func() commands.PackageUoW

// Create calls f.
func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

// FuncMallUoWFactory adapts a function to commands.MallUoWFactory.
type FuncMallUoWFactory func() commands.MallUoW

// Create calls f.
func (f FuncMallUoWFactory) Create() commands.MallUoW {
	return f()
}

// FuncIdentityUoWFactory adapts a function to commands.IdentityUoWFactory.
type FuncIdentityUoWFactory func() commands.IdentityUoW

// Create calls f.
func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
