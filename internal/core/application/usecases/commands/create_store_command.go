package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrCreateStoreCommandIsNotConstructed is returned when a CreateStoreCommand was not created through its constructor.
var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand registers a store inside an existing shopping center.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	storeID    kernel.UUID
	name       string
	shoppingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a CreateStoreCommand. Returns a validation error if an argument is missing or malformed.
func NewCreateStoreCommand(actor identity.Actor, storeID kernel.UUID, name string, shoppingID kernel.UUID) (CreateStoreCommand, error) {
	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, storeID.Validate()); err != nil {
		return CreateStoreCommand{}, err
	}
	return CreateStoreCommand{
		actor:      a,
		storeID:    storeID,
		name:       name,
		shoppingID: shoppingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStoreCommandIsNotConstructed if validation fails.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreateStoreCommand) Actor() identity.Actor {
	return c.actor
}

// StoreID returns the store ID carried by the command.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the name carried by the command.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// ShoppingID returns the shopping ID carried by the command.
func (c CreateStoreCommand) ShoppingID() kernel.UUID {
	return c.shoppingID
}
