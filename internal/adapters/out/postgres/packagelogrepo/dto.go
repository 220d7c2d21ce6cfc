// Package packagelogrepo stores the append-only audit trail of packages.
package packagelogrepo

import (
	"time"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PackageLogDTO is one row of package_logs. UserID is NULL for system entries.
type PackageLogDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID  `gorm:"type:uuid;not null;index:idx_package_logs_package_action,priority:1"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"size:20;not null;index:idx_package_logs_package_action,priority:2"`
	Details   string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName tells gorm which table stores PackageLogDTO rows.
func (PackageLogDTO) TableName() string {
	return "package_logs"
}

func fromDomain(e audit.Entry) PackageLogDTO {
	var userID *uuid.UUID
	if id := e.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return PackageLogDTO{
		ID:        e.ID().Bytes(),
		PackageID: e.PackageID().Bytes(),
		UserID:    userID,
		Action:    e.Action().String(),
		Details:   e.Details(),
		CreatedAt: e.CreatedAt(),
	}
}

func toDomain(dto PackageLogDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return audit.Entry{}, userErr
		}
		userID = &uID
	}

	action, err := audit.ParseAction(dto.Action)
	if err != nil {
		return audit.Entry{}, err
	}

	return audit.RestoreEntry(id, packageID, userID, action, dto.Details, dto.CreatedAt)
}
