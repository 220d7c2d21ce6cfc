package commands

import (
	"context"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/core/domain/services"
)

// CreateShoppingCommandHandler handles CreateShoppingCommand.
type CreateShoppingCommandHandler struct {
	uowFactory MallUoWFactory
	policy     services.AccessPolicy
}

// NewCreateShoppingCommandHandler creates a handler for CreateShoppingCommand.
// Requires a MallUoWFactory for transactional persistence.
func NewCreateShoppingCommandHandler(uowFactory MallUoWFactory) CreateShoppingCommandHandler {
	return CreateShoppingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the create shopping command and returns the new shopping.
func (h *CreateShoppingCommandHandler) Handle(ctx context.Context, cmd CreateShoppingCommand) (*mall.Shopping, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), identity.ManageStores); err != nil {
		return nil, err
	}

	shopping, err := mall.NewShopping(cmd.ShoppingID(), cmd.Name(), cmd.Address())
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

	if err = uow.ShoppingRepository().Add(ctx, shopping); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return shopping, nil
}
