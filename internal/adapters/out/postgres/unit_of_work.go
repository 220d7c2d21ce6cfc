// Package postgres provides the GORM-based Unit of Work and the database bootstrap of
// the mailroom service.
//
// A unit of work spans one business transaction. Repositories obtained from it run inside
// the transaction while one is active, and against the plain connection otherwise:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = pkg.Return(); err != nil {
//	    return err
//	}
//	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
//	    return err
//	}
//	if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after Commit is a no-op that returns gorm.ErrInvalidTransaction, which makes the
// deferred rollback above safe.
//
// Each UnitOfWork instance holds its own transaction; goroutines must not share one.
package postgres

import (
	"context"

	"mailroom/internal/adapters/out/postgres/identityrepo"
	"mailroom/internal/adapters/out/postgres/mallrepo"
	"mailroom/internal/adapters/out/postgres/packagelogrepo"
	"mailroom/internal/adapters/out/postgres/packagerepo"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory whose units share db.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and no tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes permanent and closes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes and closes the transaction. Tracked aggregates are
// forgotten along with it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// PackageRepository returns the package repository bound to the current transaction.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

// PackageLogRepository returns the package log repository bound to the current transaction.
func (uow *GormUnitOfWork) PackageLogRepository() ports.PackageLogRepository {
	return packagelogrepo.NewGormPackageLogRepository(uow.conn())
}

// ShoppingRepository returns the shopping repository bound to the current transaction.
func (uow *GormUnitOfWork) ShoppingRepository() ports.ShoppingRepository {
	return mallrepo.NewGormShoppingRepository(uow.conn(), uow)
}

// StoreRepository returns the store repository bound to the current transaction.
func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return mallrepo.NewGormStoreRepository(uow.conn(), uow)
}

// UserRepository returns the user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return identityrepo.NewGormUserRepository(uow.conn(), uow)
}

// SessionRepository returns the session repository bound to the current transaction.
func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	return identityrepo.NewGormSessionRepository(uow.conn())
}

// TrackAggregate is called by the repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the ids of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
