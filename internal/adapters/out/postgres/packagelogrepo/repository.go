package packagelogrepo

import (
	"context"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormPackageLogRepository implements PackageLogRepository using GORM. It only ever
// inserts and reads; rows are never updated or deleted.
type GormPackageLogRepository struct {
	db *gorm.DB
}

// NewGormPackageLogRepository creates a log repository over db.
func NewGormPackageLogRepository(db *gorm.DB) *GormPackageLogRepository {
	return &GormPackageLogRepository{db: db}
}

// Append inserts entry. Log rows are never updated.
func (r *GormPackageLogRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByPackage returns the entries of a package ordered by created_at, then id.
func (r *GormPackageLogRepository) ListByPackage(ctx context.Context, packageID kernel.UUID) ([]audit.Entry, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageLogDTO
	if err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Exists reports whether packageID has an entry for action.
// A non-nil userID narrows the match to that user.
func (r *GormPackageLogRepository) Exists(
	ctx context.Context,
	packageID kernel.UUID,
	action audit.Action,
	userID *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&PackageLogDTO{}).
		Where("package_id = ? AND action = ?", packageID.Bytes(), action.String())
	if userID != nil {
		query = query.Where("user_id = ?", userID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
