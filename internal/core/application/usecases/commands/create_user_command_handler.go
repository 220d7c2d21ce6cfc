package commands

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// CreateUserCommandHandler creates accounts. Only super admins hold ManageUsers.
type CreateUserCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	policy     services.AccessPolicy
}

// NewCreateUserCommandHandler creates a handler for CreateUserCommand.
// Requires an IdentityUoWFactory for transactional persistence.
func NewCreateUserCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the create user command. The password is hashed before it is stored.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), identity.ManageUsers); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := registerUser(ctx, uow, h.hasher, cmd.UserID(), cmd.Input(), cmd.Role())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// registerUser hashes the password, checks the store of a loja user and adds the account.
func registerUser(
	ctx context.Context,
	uow IdentityUoW,
	hasher ports.PasswordHasher,
	id kernel.UUID,
	input UserInput,
	role identity.Role,
) (*identity.User, error) {
	if input.StoreID != nil {
		if _, err := uow.StoreRepository().Get(ctx, *input.StoreID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause("store_id", err)
			}
			return nil, err
		}
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(id, input.Name, input.Email, hash, role, input.StoreID, stamp())
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
