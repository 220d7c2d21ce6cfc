package queries

import (
	"errors"
	"time"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrGetPackageQueryIsNotConstructed is returned when a GetPackageQuery was not created through its constructor.
var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery returns one package with its audit trail.
type GetPackageQuery struct {
	actor     identity.Actor
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a GetPackageQuery. Returns a validation error if an argument is missing or malformed.
func NewGetPackageQuery(actor identity.Actor, packageID kernel.UUID) (GetPackageQuery, error) {
	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, packageID.Validate()); err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{actor: a, packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackageQueryIsNotConstructed if validation fails.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetPackageQuery) Actor() identity.Actor {
	return q.actor
}

// PackageID returns the package ID carried by the query.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// PackageEvidence is the pickup record of a collected package.
type PackageEvidence struct {
	CollectedAt   time.Time
	CollectorName string
	CollectorCPF  string
	PhotoPath     string
	SignaturePath string
}

// LogEntry is one audit entry with the name of the user who caused it. UserID and
// UserName are nil for system entries.
type LogEntry struct {
	ID        kernel.UUID
	Action    audit.Action
	Details   string
	UserID    *kernel.UUID
	UserName  *string
	CreatedAt time.Time
}

// PackageDetail is the full view of one package.
type PackageDetail struct {
	PackageSummary

	Observations string
	ShoppingName string
	CreatedAt    time.Time
	Evidence     *PackageEvidence
	Logs         []LogEntry
}
