package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrListStoresQueryIsNotConstructed is returned when a ListStoresQuery was not created through its constructor.
var ErrListStoresQueryIsNotConstructed = errors.New(
	"ListStoresQuery must be created via NewListStoresQuery constructor",
)

// ListStoresQuery lists the stores visible to the actor, ordered by name.
type ListStoresQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewListStoresQuery creates a ListStoresQuery for actor.
func NewListStoresQuery(actor identity.Actor) (ListStoresQuery, error) {
	a, err := requireActor(actor)
	if err != nil {
		return ListStoresQuery{}, err
	}
	return ListStoresQuery{actor: a, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListStoresQueryIsNotConstructed if validation fails.
func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q ListStoresQuery) Actor() identity.Actor {
	return q.actor
}

// StoreSummary is a store with the shopping center it belongs to.
type StoreSummary struct {
	ID           kernel.UUID
	Name         string
	ShoppingID   kernel.UUID
	ShoppingName string
}
