package queries

import (
	"fmt"
	"math"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/google/uuid"
)

// PackagesPerPage is the page size of package listings.
const PackagesPerPage = 20

// MaxPackagePage keeps the listing offset within a 32-bit integer.
const MaxPackagePage = math.MaxInt32 / PackagesPerPage

// PackageSummary is one row of a package listing.
type PackageSummary struct {
	ID         kernel.UUID
	StoreID    kernel.UUID
	StoreName  string
	Code       string
	Courier    string
	ReceivedAt time.Time
	PostalType parcel.PostalType
	VolumeType parcel.VolumeType
	Status     parcel.Status
}

// packageSummaryColumns must match scanPackageSummary. The packages table is aliased p,
// stores s.
const packageSummaryColumns = `
			p.id,
			p.store_id,
			s.name,
			p.code,
			p.courier,
			p.received_at,
			p.postal_type,
			p.volume_type,
			p.status`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackageSummary(row rowScanner) (PackageSummary, error) {
	var (
		summary            PackageSummary
		id, storeID        uuid.UUID
		postalType, volume string
		status             string
	)

	if err := row.Scan(
		&id,
		&storeID,
		&summary.StoreName,
		&summary.Code,
		&summary.Courier,
		&summary.ReceivedAt,
		&postalType,
		&volume,
		&status,
	); err != nil {
		return PackageSummary{}, err
	}

	var err error
	if summary.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return PackageSummary{}, err
	}
	if summary.StoreID, err = kernel.UUIDFromGoogle(storeID); err != nil {
		return PackageSummary{}, err
	}
	if summary.Status, err = parcel.ParseStatus(status); err != nil {
		return PackageSummary{}, err
	}
	summary.PostalType = parcel.PostalType(postalType)
	summary.VolumeType = parcel.VolumeType(volume)

	return summary, nil
}

// optionalUUID converts a nullable uuid column.
func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent value
	}
	k, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func requireActor(actor identity.Actor) (identity.Actor, error) {
	if err := actor.Validate(); err != nil {
		return identity.Actor{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}
	return actor, nil
}
