package services_test

import (
	"fmt"
	"testing"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorFor(t *testing.T, role identity.Role, storeID *kernel.UUID) identity.Actor {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), "User", fmt.Sprintf("%s@mall.com", role), "hash", role, storeID, time.Now())
	require.NoError(t, err)
	return user.Actor()
}

func packageFor(t *testing.T, storeID kernel.UUID) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(kernel.NewUUID(), parcel.Intake{
		StoreID:    storeID,
		Code:       "BR1",
		Courier:    "Correios",
		ReceivedAt: time.Now(),
		PostalType: parcel.Simples,
		VolumeType: parcel.Envelope,
	}, time.Now())
	require.NoError(t, err)
	return pkg
}

func TestAccessPolicy_Authorize(t *testing.T) {
	storeID := kernel.NewUUID()
	policy := services.NewAccessPolicy()

	actors := map[identity.Role]identity.Actor{
		identity.SuperAdmin: actorFor(t, identity.SuperAdmin, nil),
		identity.Admin:      actorFor(t, identity.Admin, nil),
		identity.Portaria:   actorFor(t, identity.Portaria, nil),
		identity.Loja:       actorFor(t, identity.Loja, &storeID),
	}

	testCases := []struct {
		capability identity.Capability
		allowed    []identity.Role
	}{
		{identity.CreatePackages, []identity.Role{identity.SuperAdmin, identity.Admin, identity.Portaria}},
		{identity.CollectPackages, []identity.Role{identity.SuperAdmin, identity.Admin, identity.Portaria}},
		{identity.ReturnPackages, []identity.Role{identity.SuperAdmin, identity.Admin, identity.Portaria}},
		{identity.DeletePackages, []identity.Role{identity.SuperAdmin, identity.Admin}},
		{identity.ManageUsers, []identity.Role{identity.SuperAdmin}},
		{identity.ManageStores, []identity.Role{identity.SuperAdmin, identity.Admin}},
		{identity.ViewAllStores, []identity.Role{identity.SuperAdmin, identity.Admin, identity.Portaria}},
	}

	for _, tc := range testCases {
		for role, actor := range actors {
			t.Run(fmt.Sprintf("%s %s", role, tc.capability), func(t *testing.T) {
				err := policy.Authorize(actor, tc.capability)

				if contains(tc.allowed, role) {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, errs.ErrForbidden)
				assert.IsType(t, &errs.ForbiddenError{}, err)
				assert.Contains(t, err.Error(), tc.capability.String())
			})
		}
	}

	t.Run("zero actor holds nothing", func(t *testing.T) {
		err := policy.Authorize(identity.Actor{}, identity.CreatePackages)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func contains(roles []identity.Role, role identity.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func TestAccessPolicy_AuthorizeView(t *testing.T) {
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()
	policy := services.NewAccessPolicy()
	pkgA := packageFor(t, storeA)
	missingID := kernel.NewUUID()

	t.Run("loja sees own store package", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeView(actorFor(t, identity.Loja, &storeA), pkgA, pkgA.ID()))
	})

	t.Run("loja is forbidden from other store package", func(t *testing.T) {
		err := policy.AuthorizeView(actorFor(t, identity.Loja, &storeB), pkgA, pkgA.ID())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("loja gets the same error for unknown package", func(t *testing.T) {
		actor := actorFor(t, identity.Loja, &storeB)

		unknown := policy.AuthorizeView(actor, nil, missingID)
		outOfScope := policy.AuthorizeView(actor, pkgA, pkgA.ID())

		require.ErrorIs(t, unknown, errs.ErrForbidden)
		assert.Equal(t, outOfScope.Error(), unknown.Error())
		assert.NotContains(t, unknown.Error(), missingID.String())
	})

	t.Run("unscoped roles see every package", func(t *testing.T) {
		for _, role := range []identity.Role{identity.SuperAdmin, identity.Admin, identity.Portaria} {
			require.NoError(t, policy.AuthorizeView(actorFor(t, role, nil), pkgA, pkgA.ID()))
		}
	})

	t.Run("unscoped roles get not found for unknown package", func(t *testing.T) {
		err := policy.AuthorizeView(actorFor(t, identity.Admin, nil), nil, missingID)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero actor is forbidden", func(t *testing.T) {
		require.ErrorIs(t, policy.AuthorizeView(identity.Actor{}, pkgA, pkgA.ID()), errs.ErrForbidden)
	})
}

func TestAccessPolicy_AuthorizeStoreView(t *testing.T) {
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()
	policy := services.NewAccessPolicy()

	require.NoError(t, policy.AuthorizeStoreView(actorFor(t, identity.Loja, &storeA), storeA))
	require.ErrorIs(t, policy.AuthorizeStoreView(actorFor(t, identity.Loja, &storeA), storeB), errs.ErrForbidden)
	require.NoError(t, policy.AuthorizeStoreView(actorFor(t, identity.Portaria, nil), storeB))
}

func TestAccessPolicy_ListingScope(t *testing.T) {
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()
	policy := services.NewAccessPolicy()

	t.Run("loja is pinned to own store and filter is ignored", func(t *testing.T) {
		scope, err := policy.ListingScope(actorFor(t, identity.Loja, &storeA), &storeB)

		require.NoError(t, err)
		require.True(t, scope.Restricted())
		assert.True(t, scope.StoreID.IsEqual(storeA))
	})

	t.Run("admin without filter sees all", func(t *testing.T) {
		scope, err := policy.ListingScope(actorFor(t, identity.Admin, nil), nil)

		require.NoError(t, err)
		assert.False(t, scope.Restricted())
	})

	t.Run("admin filter is applied", func(t *testing.T) {
		scope, err := policy.ListingScope(actorFor(t, identity.Portaria, nil), &storeB)

		require.NoError(t, err)
		assert.True(t, scope.StoreID.IsEqual(storeB))
	})

	t.Run("zero actor is forbidden", func(t *testing.T) {
		_, err := policy.ListingScope(identity.Actor{}, nil)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_StoreScope(t *testing.T) {
	storeA := kernel.NewUUID()
	policy := services.NewAccessPolicy()

	scope, err := policy.StoreScope(actorFor(t, identity.Loja, &storeA))
	require.NoError(t, err)
	assert.True(t, scope.StoreID.IsEqual(storeA))

	scope, err = policy.StoreScope(actorFor(t, identity.Portaria, nil))
	require.NoError(t, err)
	assert.False(t, scope.Restricted())
}

func TestAccessPolicy_AuthorizeViewInStore(t *testing.T) {
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()
	id := kernel.NewUUID()
	policy := services.NewAccessPolicy()
	loja := actorFor(t, identity.Loja, &storeA)

	require.NoError(t, policy.AuthorizeViewInStore(loja, &storeA, id))
	require.ErrorIs(t, policy.AuthorizeViewInStore(loja, &storeB, id), errs.ErrForbidden)
	require.ErrorIs(t, policy.AuthorizeViewInStore(loja, nil, id), errs.ErrForbidden)
	require.ErrorIs(t, policy.AuthorizeViewInStore(actorFor(t, identity.SuperAdmin, nil), nil, id), errs.ErrObjectNotFound)
}
