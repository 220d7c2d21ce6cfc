package commands

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"
)

// CreateStoreCommandHandler handles CreateStoreCommand.
type CreateStoreCommandHandler struct {
	uowFactory MallUoWFactory
	policy     services.AccessPolicy
}

// NewCreateStoreCommandHandler creates a handler for CreateStoreCommand.
// Requires a MallUoWFactory for transactional persistence.
func NewCreateStoreCommandHandler(uowFactory MallUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle fails with a validation error on "shopping_id" when the shopping center does
// not exist.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*mall.Store, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), identity.ManageStores); err != nil {
		return nil, err
	}

	store, err := mall.NewStore(cmd.StoreID(), cmd.Name(), cmd.ShoppingID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ShoppingRepository().Get(ctx, store.ShoppingID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("shopping_id", err)
		}
		return nil, err
	}

	if err = uow.StoreRepository().Add(ctx, store); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
