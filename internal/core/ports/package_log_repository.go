package ports

import (
	"context"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"
)

// PackageLogRepository is the audit trail. It offers no way to change or remove an entry.
type PackageLogRepository interface {
	// Append stores one entry.
	Append(ctx context.Context, entry audit.Entry) error

	// ListByPackage returns the entries of a package in creation order.
	ListByPackage(ctx context.Context, packageID kernel.UUID) ([]audit.Entry, error)

	// Exists reports whether the package has an entry with the action. A nil userID
	// matches entries by any user.
	Exists(ctx context.Context, packageID kernel.UUID, action audit.Action, userID *kernel.UUID) (bool, error)
}
