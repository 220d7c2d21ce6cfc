package parcel

import (
	"errors"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not created through
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
)

// Package is a parcel received at the front desk on behalf of a store. It is the aggregate
// root for intake data, lifecycle status and collection evidence.
//
// Package follows these invariants:
//   - Must reference a store and carry a code, a courier and a receipt time
//   - PostalType and VolumeType are from the accepted sets
//   - Status transitions follow the Status state machine
//   - Evidence is present when Collected and absent when Pending or Returned
type Package struct {
	id           kernel.UUID
	storeID      kernel.UUID
	code         string
	courier      string
	receivedAt   time.Time
	postalType   PostalType
	volumeType   VolumeType
	observations string
	status       Status
	evidence     *Evidence
	createdAt    time.Time

	isConstructed bool
}

// Intake groups the fields captured by reception when a parcel arrives.
type Intake struct {
	StoreID      kernel.UUID
	Code         string
	Courier      string
	ReceivedAt   time.Time
	PostalType   PostalType
	VolumeType   VolumeType
	Observations string
}

// NewPackage creates a pending package from intake data. All invalid fields are reported
// together.
//
// Example:
//
//	pkg, err := parcel.NewPackage(kernel.NewUUID(), parcel.Intake{
//	    StoreID:    storeID,
//	    Code:       "BR123456789",
//	    Courier:    "Correios",
//	    ReceivedAt: time.Now(),
//	    PostalType: parcel.Registrada,
//	    VolumeType: parcel.Caixa,
//	}, time.Now())
func NewPackage(id kernel.UUID, intake Intake, createdAt time.Time) (*Package, error) {
	p := &Package{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := p.applyIntake(id, intake); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a persisted package, including status and evidence, and checks
// that the combination is consistent.
func RestorePackage(
	id kernel.UUID,
	intake Intake,
	status Status,
	evidence *Evidence,
	createdAt time.Time,
) (*Package, error) {
	p := &Package{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := p.applyIntake(id, intake); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if evidence != nil {
		if err := evidence.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateEvidence(evidence != nil); err != nil {
		return nil, err
	}

	p.status = status
	if evidence != nil {
		e := *evidence
		p.evidence = &e
	}

	return p, nil
}

// Validate ensures the package was constructed through NewPackage or RestorePackage.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// StoreID returns the package's store ID.
func (p *Package) StoreID() kernel.UUID {
	return p.storeID
}

// Code returns the package's code.
func (p *Package) Code() string {
	return p.code
}

// Courier returns the package's courier.
func (p *Package) Courier() string {
	return p.courier
}

// ReceivedAt returns when the mailroom received the package.
func (p *Package) ReceivedAt() time.Time {
	return p.receivedAt
}

// PostalType returns the package's postal type.
func (p *Package) PostalType() PostalType {
	return p.postalType
}

// VolumeType returns the package's volume type.
func (p *Package) VolumeType() VolumeType {
	return p.volumeType
}

// Observations returns the free-text notes, possibly empty.
func (p *Package) Observations() string {
	return p.observations
}

// Status returns the package's status.
func (p *Package) Status() Status {
	return p.status
}

// CreatedAt returns when the package was registered.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// Evidence returns a copy of the collection evidence, or nil when the package was never collected.
func (p *Package) Evidence() *Evidence {
	if p.evidence == nil {
		return nil
	}
	e := *p.evidence
	return &e
}

// BelongsTo reports whether the package is addressed to the given store.
func (p *Package) BelongsTo(storeID kernel.UUID) bool {
	return p.storeID.IsEqual(storeID)
}

// ValidateCollect checks, without side effects, that the package can be collected now.
// Handlers use it to fail fast before storing photo and signature files.
func (p *Package) ValidateCollect() error {
	_, err := p.status.Collect()
	return err
}

// Collect records the pickup: the package becomes Collected and keeps the evidence.
// On error the package is unchanged.
func (p *Package) Collect(evidence Evidence) error {
	if err := evidence.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Collect()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.evidence = &evidence
	return nil
}

// Return marks a pending package as sent back to the sender.
func (p *Package) Return() error {
	newStatus, err := p.status.Return()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Delete soft-deletes the package. Evidence of a collected package is retained.
func (p *Package) Delete() error {
	newStatus, err := p.status.Delete()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Package) applyIntake(id kernel.UUID, intake Intake) error {
	var problems []error

	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := intake.StoreID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("store_id", err))
	}
	code, err := kernel.RequiredText("code", intake.Code)
	problems = append(problems, err)
	courier, err := kernel.RequiredText("courier", intake.Courier)
	problems = append(problems, err)
	if intake.ReceivedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("received_at"))
	}
	problems = append(problems, intake.PostalType.Validate(), intake.VolumeType.Validate())

	if err = errors.Join(problems...); err != nil {
		return err
	}

	p.id = id
	p.storeID = intake.StoreID
	p.code = code
	p.courier = courier
	p.receivedAt = intake.ReceivedAt
	p.postalType = intake.PostalType
	p.volumeType = intake.VolumeType
	p.observations = strings.TrimSpace(intake.Observations)
	return nil
}
