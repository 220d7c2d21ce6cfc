package http

import (
	"context"
	"io"
	"log/slog"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/generated/servers"
)

// Use case contracts consumed by the server. The command and query handlers of the
// application layer satisfy them.
type (
	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error)
	}

	LogoutHandler interface {
		Handle(ctx context.Context, cmd commands.LogoutCommand) error
	}

	CreateUserHandler interface {
		Handle(ctx context.Context, cmd commands.CreateUserCommand) (*identity.User, error)
	}

	CreateShoppingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShoppingCommand) (*mall.Shopping, error)
	}

	CreateStoreHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStoreCommand) (*mall.Store, error)
	}

	CreatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePackageCommand) error
	}

	CollectPackageHandler interface {
		Handle(ctx context.Context, cmd commands.CollectPackageCommand) error
	}

	ReturnPackageHandler interface {
		Handle(ctx context.Context, cmd commands.ReturnPackageCommand) error
	}

	DeletePackageHandler interface {
		Handle(ctx context.Context, cmd commands.DeletePackageCommand) error
	}

	MarkPackageReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkPackageReadCommand) error
	}

	AuthenticateHandler interface {
		Handle(ctx context.Context, query queries.AuthenticateQuery) (queries.AuthenticateQueryResponse, error)
	}

	GetMeHandler interface {
		Handle(ctx context.Context, query queries.GetMeQuery) (queries.UserProfile, error)
	}

	ListUsersHandler interface {
		Handle(ctx context.Context, query queries.ListUsersQuery) ([]queries.UserProfile, error)
	}

	ListShoppingsHandler interface {
		Handle(ctx context.Context, query queries.ListShoppingsQuery) ([]queries.ShoppingSummary, error)
	}

	ListStoresHandler interface {
		Handle(ctx context.Context, query queries.ListStoresQuery) ([]queries.StoreSummary, error)
	}

	GetStoreHandler interface {
		Handle(ctx context.Context, query queries.GetStoreQuery) (queries.StoreDetail, error)
	}

	ListPackagesHandler interface {
		Handle(ctx context.Context, query queries.ListPackagesQuery) (queries.ListPackagesQueryResponse, error)
	}

	GetPackageHandler interface {
		Handle(ctx context.Context, query queries.GetPackageQuery) (queries.PackageDetail, error)
	}

	// EvidenceReader streams stored pickup evidence.
	EvidenceReader interface {
		Open(ctx context.Context, path string) (io.ReadCloser, error)
	}
)

// Commands groups the write use cases.
type Commands struct {
	Login           LoginHandler
	Logout          LogoutHandler
	CreateUser      CreateUserHandler
	CreateShopping  CreateShoppingHandler
	CreateStore     CreateStoreHandler
	CreatePackage   CreatePackageHandler
	CollectPackage  CollectPackageHandler
	ReturnPackage   ReturnPackageHandler
	DeletePackage   DeletePackageHandler
	MarkPackageRead MarkPackageReadHandler
}

// Queries groups the read use cases.
type Queries struct {
	Authenticate  AuthenticateHandler
	GetMe         GetMeHandler
	ListUsers     ListUsersHandler
	ListShoppings ListShoppingsHandler
	ListStores    ListStoresHandler
	GetStore      GetStoreHandler
	ListPackages  ListPackagesHandler
	GetPackage    GetPackageHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases: it turns requests
// into commands and queries, runs them for the authenticated actor and presents the
// read models. Errors are returned to echo and rendered by HandleError.
type Server struct {
	commands Commands
	queries  Queries
	evidence EvidenceReader
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, evidence EvidenceReader, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		evidence: evidence,
		logger:   logger.With("component", "http"),
	}
}
