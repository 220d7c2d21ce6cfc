package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrCreateShoppingCommandIsNotConstructed is returned when a CreateShoppingCommand was not created through its constructor.
var ErrCreateShoppingCommandIsNotConstructed = errors.New(
	"CreateShoppingCommand must be created via NewCreateShoppingCommand constructor",
)

// CreateShoppingCommand registers a shopping center.
type CreateShoppingCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	shoppingID kernel.UUID
	name       string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateShoppingCommand creates a CreateShoppingCommand. Returns a validation error if an argument is missing or malformed.
func NewCreateShoppingCommand(actor identity.Actor, shoppingID kernel.UUID, name, address string) (CreateShoppingCommand, error) {
	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, shoppingID.Validate()); err != nil {
		return CreateShoppingCommand{}, err
	}
	return CreateShoppingCommand{
		actor:      a,
		shoppingID: shoppingID,
		name:       name,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShoppingCommandIsNotConstructed if validation fails.
func (c CreateShoppingCommand) Validate() error {
	return c.guard.Validate(ErrCreateShoppingCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreateShoppingCommand) Actor() identity.Actor {
	return c.actor
}

// ShoppingID returns the shopping ID carried by the command.
func (c CreateShoppingCommand) ShoppingID() kernel.UUID {
	return c.shoppingID
}

// Name returns the name carried by the command.
func (c CreateShoppingCommand) Name() string {
	return c.name
}

// Address returns the address carried by the command.
func (c CreateShoppingCommand) Address() string {
	return c.address
}
