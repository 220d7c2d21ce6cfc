package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
)

// ErrMarkPackageReadCommandIsNotConstructed is returned when a MarkPackageReadCommand was not created through its constructor.
var ErrMarkPackageReadCommandIsNotConstructed = errors.New(
	"MarkPackageReadCommand must be created via NewMarkPackageReadCommand constructor",
)

// MarkPackageReadCommand records that a store manager opened a package.
type MarkPackageReadCommand struct {
	PackageTransitionCommand
}

// NewMarkPackageReadCommand creates a MarkPackageReadCommand. Returns a validation error if an argument is missing or malformed.
func NewMarkPackageReadCommand(actor identity.Actor, packageID kernel.UUID) (MarkPackageReadCommand, error) {
	cmd, err := newPackageTransitionCommand(actor, packageID)
	if err != nil {
		return MarkPackageReadCommand{}, err
	}
	return MarkPackageReadCommand{PackageTransitionCommand: cmd}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkPackageReadCommandIsNotConstructed if validation fails.
func (c MarkPackageReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageReadCommandIsNotConstructed)
}
