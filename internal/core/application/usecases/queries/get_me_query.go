package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/pkg/guard"
)

// ErrGetMeQueryIsNotConstructed is returned when a GetMeQuery was not created through its constructor.
var ErrGetMeQueryIsNotConstructed = errors.New(
	"GetMeQuery must be created via NewGetMeQuery constructor",
)

// GetMeQuery returns the profile of the authenticated user.
type GetMeQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetMeQuery creates a GetMeQuery for actor.
func NewGetMeQuery(actor identity.Actor) (GetMeQuery, error) {
	a, err := requireActor(actor)
	if err != nil {
		return GetMeQuery{}, err
	}
	return GetMeQuery{actor: a, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMeQueryIsNotConstructed if validation fails.
func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetMeQuery) Actor() identity.Actor {
	return q.actor
}
