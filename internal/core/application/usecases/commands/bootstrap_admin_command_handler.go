package commands

import (
	"context"
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// BootstrapAdminCommandHandler creates the configured super admin unless an account with
// that email already exists. It runs at start-up without an actor.
type BootstrapAdminCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

// NewBootstrapAdminCommandHandler creates a handler for BootstrapAdminCommand.
// Requires an IdentityUoWFactory for transactional persistence.
func NewBootstrapAdminCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle reports whether a new account was created.
func (h *BootstrapAdminCommandHandler) Handle(ctx context.Context, cmd BootstrapAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	input := cmd.Input()
	_, err := uow.UserRepository().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	if _, err = registerUser(ctx, uow, h.hasher, kernel.NewUUID(), input, identity.SuperAdmin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
