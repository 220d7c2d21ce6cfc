package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/pkg/guard"
)

// ErrBootstrapAdminCommandIsNotConstructed is returned when a BootstrapAdminCommand was not created through its constructor.
var ErrBootstrapAdminCommandIsNotConstructed = errors.New(
	"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
)

// BootstrapAdminCommand seeds the first super admin from configuration.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	input UserInput

	guard guard.ConstructorGuard
}

// NewBootstrapAdminCommand creates the command that seeds the first admin user.
func NewBootstrapAdminCommand(name, email, password string) (BootstrapAdminCommand, error) {
	if err := checkPassword(password); err != nil {
		return BootstrapAdminCommand{}, err
	}
	return BootstrapAdminCommand{
		input: UserInput{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     identity.SuperAdmin.String(),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBootstrapAdminCommandIsNotConstructed if validation fails.
func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

// Input returns the input carried by the command.
func (c BootstrapAdminCommand) Input() UserInput {
	return c.input
}
