// Package ports defines the contracts between the mailroom core and its adapters:
// repositories, the unit of work, evidence storage and credential services.
package ports

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates.
// Packages are never removed; deletion is a status.
type PackageRepository interface {
	// Add persists a new package.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists status and evidence changes of an existing package.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetForUpdate retrieves a package and locks its row until the transaction ends.
	// Concurrent transitions on the same package are serialized by this lock, so the
	// second caller observes the status written by the first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetAllPendingReceivedBefore returns pending packages received before the given time,
	// oldest first.
	GetAllPendingReceivedBefore(ctx context.Context, before time.Time) ([]*parcel.Package, error)
}
