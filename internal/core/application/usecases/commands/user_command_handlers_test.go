package commands_test

import (
	"testing"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUserCommandHandler_Handle_LojaUser(t *testing.T) {
	ctx := t.Context()
	store, err := mall.NewStore(kernel.NewUUID(), "Livraria Central", kernel.NewUUID())
	require.NoError(t, err)
	storeID := store.ID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(actorOf(t, identity.SuperAdmin), userID, commands.UserInput{
		Name:     "Ana Lima",
		Email:    "Ana@Livraria.com",
		Password: "password1",
		Role:     "loja",
		StoreID:  &storeID,
	})
	require.NoError(t, err)

	stores := new(MockStoreRepository)
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	uow.On("StoreRepository").Return(stores)
	uow.On("UserRepository").Return(users)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		stores.On("Get", ctx, storeID).Return(store, nil).Once(),
		hasher.On("Hash", "password1").Return("bcrypt-hash", nil).Once(),
		users.On("Add", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.ID().IsEqual(userID) && u.Email() == "ana@livraria.com" &&
				u.PasswordHash() == "bcrypt-hash" && u.Role() == identity.Loja
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	user, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, user.StoreID())
	assert.True(t, user.StoreID().IsEqual(storeID))
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_OnlySuperAdmin(t *testing.T) {
	for _, role := range []identity.Role{identity.Admin, identity.Portaria, identity.Loja} {
		t.Run(role.String(), func(t *testing.T) {
			cmd, err := commands.NewCreateUserCommand(actorOf(t, role), kernel.NewUUID(), commands.UserInput{
				Name: "X", Email: "x@mall.com", Password: "password1", Role: "portaria",
			})
			require.NoError(t, err)
			factory := new(MockIdentityUoWFactory)

			h := commands.NewCreateUserCommandHandler(factory, new(MockPasswordHasher))
			_, err = h.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateUserCommandHandler_Handle_UnknownStore(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(actorOf(t, identity.SuperAdmin), kernel.NewUUID(), commands.UserInput{
		Name: "Ana", Email: "ana@mall.com", Password: "password1", Role: "loja", StoreID: &storeID,
	})
	require.NoError(t, err)

	stores := new(MockStoreRepository)
	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(stores)
	uow.On("Rollback", ctx).Return(nil).Once()
	stores.On("Get", ctx, storeID).Return(nil, errs.NewObjectNotFoundError("store", storeID)).Once()
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	_, err = h.Handle(ctx, cmd)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "store_id", invalid.ParamName)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestCreateUserCommandHandler_Handle_LojaWithoutStore(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(actorOf(t, identity.SuperAdmin), kernel.NewUUID(), commands.UserInput{
		Name: "Ana", Email: "ana@mall.com", Password: "password1", Role: "loja",
	})
	require.NoError(t, err)

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("Rollback", ctx).Return(nil).Once()
	hasher.On("Hash", "password1").Return("h", nil).Once()
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, identity.ErrStoreRequiredForLoja)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateUserCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateUserCommand(actorOf(t, identity.SuperAdmin), kernel.NewUUID(), commands.UserInput{
		Name: "Ana", Email: "ana@mall.com", Password: "short", Role: "gerente",
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "role")

	_, err = commands.NewCreateUserCommand(identity.Actor{}, kernel.NewUUID(), commands.UserInput{
		Name: "Ana", Email: "ana@mall.com", Password: "password1", Role: "admin",
	})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestBootstrapAdminCommandHandler_Handle_CreatesOnce(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBootstrapAdminCommand("Administrador", " Admin@Mall.com ", "changeme1")
	require.NoError(t, err)

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(users)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		users.On("GetByEmail", ctx, "admin@mall.com").Return(nil, errs.NewObjectNotFoundError("email", "admin@mall.com")).Once(),
		hasher.On("Hash", "changeme1").Return("h", nil).Once(),
		users.On("Add", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role() == identity.SuperAdmin && u.StoreID() == nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBootstrapAdminCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestBootstrapAdminCommandHandler_Handle_ExistingAccount(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBootstrapAdminCommand("Administrador", "admin@mall.com", "changeme1")
	require.NoError(t, err)

	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("Rollback", ctx).Return(nil).Once()
	users.On("GetByEmail", ctx, "admin@mall.com").Return(newUser(t, identity.SuperAdmin, nil), nil).Once()
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBootstrapAdminCommandHandler(factory, hasher)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, created)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
