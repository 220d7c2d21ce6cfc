package packagerepo

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a repository that reports saved packages to tracker.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status and evidence columns. Intake data is immutable after creation.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "collected_at", "collector_name", "collector_cpf", "photo_path", "signature_path", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get reads the package without locking the row.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the row with SELECT ... FOR UPDATE. It must run inside a transaction
// for the lock to outlive the statement.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPackageRepository) get(db *gorm.DB, id kernel.UUID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingReceivedBefore returns pending packages received before the given time,
// oldest first.
func (r *GormPackageRepository) GetAllPendingReceivedBefore(
	ctx context.Context,
	before time.Time,
) ([]*parcel.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND received_at < ?", parcel.Pending.String(), before).
		Order("received_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}
