// Package packagerepo maps the package aggregate onto the packages table.
package packagerepo

import (
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is one row of the packages table. Status, postal type and volume type are
// stored by name so that the table stays readable from SQL.
type PackageDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Code         string      `gorm:"size:255;not null"`
	Courier      string      `gorm:"size:255;not null"`
	ReceivedAt   time.Time   `gorm:"not null;index"`
	PostalType   string      `gorm:"size:20;not null"`
	VolumeType   string      `gorm:"size:20;not null"`
	Observations string      `gorm:"type:text"`
	Status       string      `gorm:"size:20;not null;index"`
	Evidence     EvidenceDTO `gorm:"embedded"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName tells gorm which table stores PackageDTO rows.
func (PackageDTO) TableName() string {
	return "packages"
}

// EvidenceDTO holds the pickup columns; all of them are NULL until the package is collected.
type EvidenceDTO struct {
	CollectedAt   *time.Time
	CollectorName *string `gorm:"size:255"`
	CollectorCPF  *string `gorm:"column:collector_cpf;size:11"`
	PhotoPath     *string `gorm:"size:512"`
	SignaturePath *string `gorm:"size:512"`
}

func fromDomain(p *parcel.Package) PackageDTO {
	dto := PackageDTO{
		ID:           p.ID().Bytes(),
		StoreID:      p.StoreID().Bytes(),
		Code:         p.Code(),
		Courier:      p.Courier(),
		ReceivedAt:   p.ReceivedAt(),
		PostalType:   string(p.PostalType()),
		VolumeType:   string(p.VolumeType()),
		Observations: p.Observations(),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt(),
	}

	if e := p.Evidence(); e != nil {
		collectedAt := e.CollectedAt()
		name := e.CollectorName()
		cpf := e.CollectorCPF().String()
		photo := e.PhotoPath()
		signature := e.SignaturePath()
		dto.Evidence = EvidenceDTO{
			CollectedAt:   &collectedAt,
			CollectorName: &name,
			CollectorCPF:  &cpf,
			PhotoPath:     &photo,
			SignaturePath: &signature,
		}
	}

	return dto
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var evidence *parcel.Evidence
	if dto.Evidence.CollectedAt != nil {
		cpf, cpfErr := kernel.NewCPF(deref(dto.Evidence.CollectorCPF))
		if cpfErr != nil {
			return nil, cpfErr
		}
		e, evidenceErr := parcel.NewEvidence(
			deref(dto.Evidence.CollectorName),
			cpf,
			deref(dto.Evidence.PhotoPath),
			deref(dto.Evidence.SignaturePath),
			*dto.Evidence.CollectedAt,
		)
		if evidenceErr != nil {
			return nil, evidenceErr
		}
		evidence = &e
	}

	return parcel.RestorePackage(id, parcel.Intake{
		StoreID:      storeID,
		Code:         dto.Code,
		Courier:      dto.Courier,
		ReceivedAt:   dto.ReceivedAt,
		PostalType:   parcel.PostalType(dto.PostalType),
		VolumeType:   parcel.VolumeType(dto.VolumeType),
		Observations: dto.Observations,
	}, status, evidence, dto.CreatedAt)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
