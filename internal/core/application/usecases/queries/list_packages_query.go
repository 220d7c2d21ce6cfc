package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrListPackagesQueryIsNotConstructed is returned when a ListPackagesQuery was not created through its constructor.
var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// PackageFilter narrows a package listing. Zero values mean "no filter" and page 1.
type PackageFilter struct {
	Status  *parcel.Status
	StoreID *kernel.UUID
	Page    int
}

// ListPackagesQuery pages through packages, newest receipt first.
//
// Deleted packages are listed only when the filter asks for status "deleted". For a
// store-scoped actor the StoreID filter is ignored and the listing is pinned to the
// actor's own store.
//
// Example:
//
//	pending := parcel.Pending
//	query, err := NewListPackagesQuery(actor, PackageFilter{Status: &pending, Page: 2})
type ListPackagesQuery struct {
	actor  identity.Actor
	filter PackageFilter

	guard guard.ConstructorGuard
}

// NewListPackagesQuery creates a ListPackagesQuery. Returns a validation error if an argument is missing or malformed.
func NewListPackagesQuery(actor identity.Actor, filter PackageFilter) (ListPackagesQuery, error) {
	a, actorErr := requireActor(actor)

	var problems []error
	problems = append(problems, actorErr)
	if filter.Status != nil {
		problems = append(problems, filter.Status.Validate())
	}
	if filter.StoreID != nil {
		if err := filter.StoreID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("store_id", err))
		}
	}
	if filter.Page < 0 || filter.Page > MaxPackagePage {
		problems = append(problems, errs.NewValueIsOutOfRangeError("page", filter.Page, 1, MaxPackagePage))
	}
	if err := errors.Join(problems...); err != nil {
		return ListPackagesQuery{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}

	return ListPackagesQuery{actor: a, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListPackagesQueryIsNotConstructed if validation fails.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q ListPackagesQuery) Actor() identity.Actor {
	return q.actor
}

// Filter returns the filter carried by the query.
func (q ListPackagesQuery) Filter() PackageFilter {
	return q.filter
}

// ListPackagesQueryResponse is one page of packages.
type ListPackagesQueryResponse struct {
	Items   []PackageSummary
	Page    int
	PerPage int
	Total   int64
}

// Pages is the number of pages needed for Total.
func (r ListPackagesQueryResponse) Pages() int {
	if r.Total == 0 {
		return 0
	}
	return int((r.Total + int64(r.PerPage) - 1) / int64(r.PerPage))
}
