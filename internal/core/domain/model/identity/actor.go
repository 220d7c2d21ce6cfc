package identity

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through its constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be obtained from an authenticated User")

// Actor is the capability token for one authenticated request. It is passed explicitly
// into every command and query; nothing reads the caller's identity from global state.
type Actor struct {
	userID  kernel.UUID
	role    Role
	storeID *kernel.UUID

	guard guard.ConstructorGuard
}

func newActor(userID kernel.UUID, role Role, storeID *kernel.UUID) Actor {
	return Actor{
		userID:  userID,
		role:    role,
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate rejects zero-value actors so that unauthenticated code paths fail closed.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the actor's user ID.
func (a Actor) UserID() kernel.UUID { return a.userID }

// Role returns the actor's role.
func (a Actor) Role() Role { return a.role }

// Can reports whether the actor's role holds the capability. Zero-value actors hold none.
func (a Actor) Can(c Capability) bool {
	if a.Validate() != nil {
		return false
	}
	return a.role.Can(c)
}

// StoreScope returns the only store the actor may see, and false when the actor is unscoped.
// Invalid actors and store-scoped actors without a store get a zero UUID that matches nothing.
func (a Actor) StoreScope() (kernel.UUID, bool) {
	if a.Validate() != nil {
		return kernel.UUID{}, true
	}
	if !a.role.IsStoreScoped() {
		return kernel.UUID{}, false
	}
	if a.storeID == nil {
		return kernel.UUID{}, true
	}
	return *a.storeID, true
}
