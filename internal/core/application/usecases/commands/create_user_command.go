package commands

import (
	"errors"
	"fmt"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted account password.
const MinPasswordLength = 8

// ErrCreateUserCommandIsNotConstructed is returned when a CreateUserCommand was not created through its constructor.
var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// UserInput carries the fields of a new account. Role is the wire name, e.g. "portaria".
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	StoreID  *kernel.UUID
}

// CreateUserCommand registers a new account on behalf of a super admin.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	userID kernel.UUID
	input  UserInput
	role   identity.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a CreateUserCommand. Returns a validation error if an argument is missing or malformed.
func NewCreateUserCommand(actor identity.Actor, userID kernel.UUID, input UserInput) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}

	a, actorErr := requireActor(actor)
	role, roleErr := identity.ParseRole(input.Role)
	if err := errors.Join(
		actorErr,
		userID.Validate(),
		roleErr,
		checkPassword(input.Password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	cmd.actor = a
	cmd.userID = userID
	cmd.role = role
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateUserCommandIsNotConstructed if validation fails.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreateUserCommand) Actor() identity.Actor {
	return c.actor
}

// UserID returns the user ID carried by the command.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Input returns the input carried by the command.
func (c CreateUserCommand) Input() UserInput {
	return c.input
}

// Role returns the role the new user is created with.
func (c CreateUserCommand) Role() identity.Role {
	return c.role
}

func checkPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password", fmt.Errorf("must be at least %d characters", MinPasswordLength),
		)
	}
	return nil
}
