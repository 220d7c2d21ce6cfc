package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
)

// ErrDeletePackageCommandIsNotConstructed is returned when a DeletePackageCommand was not created through its constructor.
var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand soft-deletes a package. The row and any collection evidence are kept.
type DeletePackageCommand struct {
	PackageTransitionCommand
}

// NewDeletePackageCommand creates a DeletePackageCommand. Returns a validation error if an argument is missing or malformed.
func NewDeletePackageCommand(actor identity.Actor, packageID kernel.UUID) (DeletePackageCommand, error) {
	cmd, err := newPackageTransitionCommand(actor, packageID)
	if err != nil {
		return DeletePackageCommand{}, err
	}
	return DeletePackageCommand{PackageTransitionCommand: cmd}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeletePackageCommandIsNotConstructed if validation fails.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}
