package services

import (
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
)

const viewOperation = "view package"

// Scope constrains a listing to one store. A nil StoreID means every store.
type Scope struct {
	StoreID *kernel.UUID
}

// Restricted reports whether the scope limits results to a single store.
func (s Scope) Restricted() bool {
	return s.StoreID != nil
}

// AccessPolicy is a domain service that decides what an actor may do and see.
//
// Key responsibilities:
//   - Gating mutating operations by capability before any state machine runs
//   - Scoping package and store visibility for store-bound roles
//   - Turning listing filters into a Scope the repositories apply
//
// Business rules:
//   - Capabilities come from the role table in the identity package
//   - A loja actor sees only its own store, and a request outside it is refused with
//     a ForbiddenError that does not reveal whether the target exists
//   - An actor that was not built from an authenticated user holds nothing
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(actor, identity.DeletePackages); err != nil {
//	    return err // errs.ErrForbidden
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize checks that the actor holds the capability.
//
// Returns:
//   - error: a *errs.ForbiddenError naming the operation, or nil
func (AccessPolicy) Authorize(actor identity.Actor, capability identity.Capability) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenErrorWithCause(capability.String(), err)
	}
	if !actor.Can(capability) {
		return errs.NewForbiddenError(capability.String())
	}
	return nil
}

// AuthorizeView checks that the actor may see the package. A nil package is treated
// as out of scope for store-bound actors and as not found for everyone else.
//
// Parameters:
//   - actor: the authenticated caller
//   - pkg: the package loaded for the request, or nil when the id is unknown
//   - id: the requested package id, used for the not found error
func (p AccessPolicy) AuthorizeView(actor identity.Actor, pkg *parcel.Package, id kernel.UUID) error {
	if pkg == nil {
		return p.AuthorizeViewInStore(actor, nil, id)
	}
	storeID := pkg.StoreID()
	return p.AuthorizeViewInStore(actor, &storeID, id)
}

// AuthorizeViewInStore is AuthorizeView for read models that only know the store the
// package belongs to. storeID is nil when the package does not exist.
func (AccessPolicy) AuthorizeViewInStore(actor identity.Actor, storeID *kernel.UUID, id kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenErrorWithCause(viewOperation, err)
	}

	own, scoped := actor.StoreScope()
	if scoped {
		if storeID == nil || !own.IsEqual(*storeID) {
			return errs.NewForbiddenError(viewOperation)
		}
		return nil
	}

	if storeID == nil {
		return errs.NewObjectNotFoundError("package", id)
	}
	return nil
}

// AuthorizeStoreView checks that the actor may open the store detail.
func (AccessPolicy) AuthorizeStoreView(actor identity.Actor, storeID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenErrorWithCause("view store", err)
	}
	if own, scoped := actor.StoreScope(); scoped && !own.IsEqual(storeID) {
		return errs.NewForbiddenError("view store")
	}
	return nil
}

// ListingScope resolves the store filter of a listing. Store-bound actors are pinned to
// their store and the requested filter is ignored; other actors get the filter as asked.
func (AccessPolicy) ListingScope(actor identity.Actor, requested *kernel.UUID) (Scope, error) {
	if err := actor.Validate(); err != nil {
		return Scope{}, errs.NewForbiddenErrorWithCause("list packages", err)
	}

	if own, scoped := actor.StoreScope(); scoped {
		return Scope{StoreID: &own}, nil
	}
	if requested == nil {
		return Scope{}, nil
	}
	id := *requested
	return Scope{StoreID: &id}, nil
}

// StoreScope resolves which stores appear in a store listing: all of them when the actor
// holds ViewAllStores, otherwise only its own.
func (AccessPolicy) StoreScope(actor identity.Actor) (Scope, error) {
	if err := actor.Validate(); err != nil {
		return Scope{}, errs.NewForbiddenErrorWithCause("list stores", err)
	}
	if actor.Can(identity.ViewAllStores) {
		return Scope{}, nil
	}
	own, _ := actor.StoreScope()
	return Scope{StoreID: &own}, nil
}
