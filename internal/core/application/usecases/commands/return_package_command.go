package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
)

// ErrReturnPackageCommandIsNotConstructed is returned when a ReturnPackageCommand was not created through its constructor.
var ErrReturnPackageCommandIsNotConstructed = errors.New(
	"ReturnPackageCommand must be created via NewReturnPackageCommand constructor",
)

// ReturnPackageCommand sends a pending package back to the sender.
type ReturnPackageCommand struct {
	PackageTransitionCommand
}

// NewReturnPackageCommand creates a ReturnPackageCommand. Returns a validation error if an argument is missing or malformed.
func NewReturnPackageCommand(actor identity.Actor, packageID kernel.UUID) (ReturnPackageCommand, error) {
	cmd, err := newPackageTransitionCommand(actor, packageID)
	if err != nil {
		return ReturnPackageCommand{}, err
	}
	return ReturnPackageCommand{PackageTransitionCommand: cmd}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnPackageCommandIsNotConstructed if validation fails.
func (c ReturnPackageCommand) Validate() error {
	return c.guard.Validate(ErrReturnPackageCommandIsNotConstructed)
}
