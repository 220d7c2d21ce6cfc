package identity_test

import (
	"testing"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor_FromUser(t *testing.T) {
	t.Run("unscoped roles see every store", func(t *testing.T) {
		user, err := identity.NewUser(kernel.NewUUID(), "Ana", "ana@mall.com", "hash", identity.Portaria, nil, time.Now())
		require.NoError(t, err)

		actor := user.Actor()

		require.NoError(t, actor.Validate())
		assert.True(t, actor.UserID().IsEqual(user.ID()))
		assert.Equal(t, identity.Portaria, actor.Role())
		_, scoped := actor.StoreScope()
		assert.False(t, scoped)
		assert.True(t, actor.Can(identity.CollectPackages))
		assert.False(t, actor.Can(identity.DeletePackages))
	})

	t.Run("loja actors are scoped to their store", func(t *testing.T) {
		storeID := kernel.NewUUID()
		user, err := identity.NewUser(kernel.NewUUID(), "Loja", "loja@mall.com", "hash", identity.Loja, &storeID, time.Now())
		require.NoError(t, err)

		scope, scoped := user.Actor().StoreScope()

		assert.True(t, scoped)
		assert.True(t, scope.IsEqual(storeID))
		assert.False(t, user.Actor().Can(identity.CreatePackages))
	})
}

func TestActor_ZeroValueFailsClosed(t *testing.T) {
	var actor identity.Actor

	require.ErrorIs(t, actor.Validate(), identity.ErrActorIsNotConstructed)
	assert.False(t, actor.Can(identity.CreatePackages))

	scope, scoped := actor.StoreScope()
	assert.True(t, scoped)
	assert.Error(t, scope.Validate())
}
