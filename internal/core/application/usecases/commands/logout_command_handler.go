package commands

import (
	"context"

	"mailroom/internal/pkg/errs"
)

// LogoutCommandHandler revokes a session. Revoking an already revoked session succeeds.
type LogoutCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewLogoutCommandHandler creates a handler for LogoutCommand.
// Requires an IdentityUoWFactory for transactional persistence.
func NewLogoutCommandHandler(uowFactory IdentityUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{uowFactory: uowFactory}
}

// Handle revokes the session. Only the owner of a session may revoke it.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session, err := uow.SessionRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if !session.UserID().IsEqual(cmd.Actor().UserID()) {
		return errs.NewForbiddenError("revoke session")
	}

	session.Revoke(stamp())
	if err = uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
