package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/pkg/guard"
)

// ErrListUsersQueryIsNotConstructed is returned when a ListUsersQuery was not created through its constructor.
var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists all user accounts. It requires identity.ManageUsers.
type ListUsersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a ListUsersQuery for actor.
func NewListUsersQuery(actor identity.Actor) (ListUsersQuery, error) {
	a, err := requireActor(actor)
	if err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{actor: a, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListUsersQueryIsNotConstructed if validation fails.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q ListUsersQuery) Actor() identity.Actor {
	return q.actor
}
