// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization, transaction
// management, persistence and, for package transitions, one audit entry in the same
// transaction.
package commands

import (
	"context"

	"mailroom/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	PackageLogRepoFactory interface {
		PackageLogRepository() ports.PackageLogRepository
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	ShoppingRepoFactory interface {
		ShoppingRepository() ports.ShoppingRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// PackageUoW covers package intake and lifecycle transitions together with
	// their audit entries.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
	//   // ... transition, Update, Append
	//
	//   err = uow.Commit(ctx)
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		PackageLogRepoFactory
		StoreRepoFactory
	}

	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// MallUoW manages shopping centers and stores.
	MallUoW interface {
		TxManager
		ShoppingRepoFactory
		StoreRepoFactory
	}

	MallUoWFactory interface {
		Create() MallUoW
	}

	// IdentityUoW manages users and their sessions.
	IdentityUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
		StoreRepoFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
