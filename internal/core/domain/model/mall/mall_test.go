package mall_test

import (
	"strings"
	"testing"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopping(t *testing.T) {
	t.Run("should trim fields", func(t *testing.T) {
		shopping, err := mall.NewShopping(kernel.NewUUID(), "  Shopping Center Norte ", " Av. Central, 100 ")

		require.NoError(t, err)
		require.NoError(t, shopping.Validate())
		assert.Equal(t, "Shopping Center Norte", shopping.Name())
		assert.Equal(t, "Av. Central, 100", shopping.Address())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := mall.NewShopping(kernel.NewUUID(), " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewStore(t *testing.T) {
	t.Run("should belong to a shopping", func(t *testing.T) {
		shoppingID := kernel.NewUUID()

		store, err := mall.NewStore(kernel.NewUUID(), "Livraria", shoppingID)

		require.NoError(t, err)
		assert.True(t, shoppingID.IsEqual(store.ShoppingID()))
		assert.Equal(t, "Livraria", store.Name())
	})

	t.Run("should reject missing shopping and long names together", func(t *testing.T) {
		_, err := mall.NewStore(kernel.NewUUID(), strings.Repeat("a", 300), kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, (&mall.Store{}).Validate(), mall.ErrStoreIsNotConstructed)
	})
}
