package parcel

import (
	"errors"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

// ErrEvidenceIsNotConstructed is returned when an Evidence was not created through its constructor.
var ErrEvidenceIsNotConstructed = errors.New("Evidence must be created via NewEvidence constructor")

// Evidence is the proof of pickup stored on a collected package. Photo and signature are
// references (storage paths) to the captured images, not the images themselves.
type Evidence struct {
	collectorName string
	collectorCPF  kernel.CPF
	photoPath     string
	signaturePath string
	collectedAt   time.Time

	isConstructed bool
}

// NewEvidence validates that every part of the evidence bundle is present and that the
// collector name fits its column.
func NewEvidence(
	collectorName string,
	collectorCPF kernel.CPF,
	photoPath, signaturePath string,
	collectedAt time.Time,
) (Evidence, error) {
	name, nameErr := kernel.RequiredText("collector_name", collectorName)
	e := Evidence{
		collectorName: name,
		collectorCPF:  collectorCPF,
		photoPath:     strings.TrimSpace(photoPath),
		signaturePath: strings.TrimSpace(signaturePath),
		collectedAt:   collectedAt,
		isConstructed: true,
	}

	problems := []error{nameErr}
	if collectorCPF.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("collector_cpf"))
	}
	if e.photoPath == "" {
		problems = append(problems, errs.NewValueIsRequiredError("photo"))
	}
	if e.signaturePath == "" {
		problems = append(problems, errs.NewValueIsRequiredError("signature"))
	}
	if collectedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("collected_at"))
	}
	if err := errors.Join(problems...); err != nil {
		return Evidence{}, err
	}

	return e, nil
}

// Validate reports ErrEvidenceIsNotConstructed for a zero or hand-built Evidence.
func (e Evidence) Validate() error {
	if !e.isConstructed {
		return ErrEvidenceIsNotConstructed
	}
	return nil
}

// CollectorName returns the evidence's collector name.
func (e Evidence) CollectorName() string {
	return e.collectorName
}

// CollectorCPF returns the evidence's collector CPF.
func (e Evidence) CollectorCPF() kernel.CPF {
	return e.collectorCPF
}

// PhotoPath returns the evidence's photo path.
func (e Evidence) PhotoPath() string {
	return e.photoPath
}

// SignaturePath returns the evidence's signature path.
func (e Evidence) SignaturePath() string {
	return e.signaturePath
}

// CollectedAt returns when the package was handed over.
func (e Evidence) CollectedAt() time.Time {
	return e.collectedAt
}
