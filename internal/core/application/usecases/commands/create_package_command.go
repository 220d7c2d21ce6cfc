package commands

import (
	"errors"
	"fmt"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrCreatePackageCommandIsNotConstructed is returned when a CreatePackageCommand was not created through its constructor.
var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand registers a parcel received at the front desk.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(actor, kernel.NewUUID(), parcel.Intake{
//	    StoreID:    storeID,
//	    Code:       "BR123456789",
//	    Courier:    "Correios",
//	    ReceivedAt: time.Now(),
//	    PostalType: parcel.Simples,
//	    VolumeType: parcel.Envelope,
//	})
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Actor
	packageID kernel.UUID
	intake    parcel.Intake

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand checks the actor and package id. Intake fields are validated
// by the Package aggregate so that all of them are reported together.
func NewCreatePackageCommand(
	actor identity.Actor,
	packageID kernel.UUID,
	intake parcel.Intake,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		intake: intake,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPackageID(packageID),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackageCommandIsNotConstructed if validation fails.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreatePackageCommand) Actor() identity.Actor {
	return c.actor
}

// PackageID returns the package ID carried by the command.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Intake returns the intake carried by the command.
func (c CreatePackageCommand) Intake() parcel.Intake {
	return c.intake
}

func (c *CreatePackageCommand) setActor(actor identity.Actor) error {
	a, err := requireActor(actor)
	c.actor = a
	return err
}

func (c *CreatePackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.packageID = id
	return nil
}

// requireActor rejects actors that were not obtained from an authenticated user.
func requireActor(actor identity.Actor) (identity.Actor, error) {
	if err := actor.Validate(); err != nil {
		return identity.Actor{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}
	return actor, nil
}

// stamp returns the current time truncated to microseconds, the precision PostgreSQL keeps.
func stamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
