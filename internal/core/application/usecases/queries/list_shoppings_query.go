package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrListShoppingsQueryIsNotConstructed is returned when a ListShoppingsQuery was not created through its constructor.
var ErrListShoppingsQueryIsNotConstructed = errors.New(
	"ListShoppingsQuery must be created via NewListShoppingsQuery constructor",
)

// ListShoppingsQuery lists every shopping center. Any authenticated actor may run it.
type ListShoppingsQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewListShoppingsQuery creates a ListShoppingsQuery for actor.
func NewListShoppingsQuery(actor identity.Actor) (ListShoppingsQuery, error) {
	a, err := requireActor(actor)
	if err != nil {
		return ListShoppingsQuery{}, err
	}
	return ListShoppingsQuery{actor: a, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShoppingsQueryIsNotConstructed if validation fails.
func (q ListShoppingsQuery) Validate() error {
	return q.guard.Validate(ErrListShoppingsQueryIsNotConstructed)
}

// ShoppingSummary is one row of the shopping listing.
type ShoppingSummary struct {
	ID         kernel.UUID
	Name       string
	Address    string
	StoreCount int
}
