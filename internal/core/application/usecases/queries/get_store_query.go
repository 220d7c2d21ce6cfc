package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// RecentPackagesLimit is how many packages the store detail shows.
const RecentPackagesLimit = 10

// ErrGetStoreQueryIsNotConstructed is returned when a GetStoreQuery was not created through its constructor.
var ErrGetStoreQueryIsNotConstructed = errors.New(
	"GetStoreQuery must be created via NewGetStoreQuery constructor",
)

// GetStoreQuery returns a store with its most recently received packages.
type GetStoreQuery struct {
	actor   identity.Actor
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreQuery creates a GetStoreQuery. Returns a validation error if an argument is missing or malformed.
func NewGetStoreQuery(actor identity.Actor, storeID kernel.UUID) (GetStoreQuery, error) {
	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, storeID.Validate()); err != nil {
		return GetStoreQuery{}, err
	}
	return GetStoreQuery{actor: a, storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreQueryIsNotConstructed if validation fails.
func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetStoreQuery) Actor() identity.Actor {
	return q.actor
}

// StoreID returns the store ID carried by the query.
func (q GetStoreQuery) StoreID() kernel.UUID {
	return q.storeID
}

// StoreDetail is a store and its latest packages, deleted ones excluded.
type StoreDetail struct {
	StoreSummary

	RecentPackages []PackageSummary
}
