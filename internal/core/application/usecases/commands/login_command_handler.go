package commands

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// LoginResult is the issued token and the user it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *identity.User
}

// LoginCommandHandler verifies credentials and opens a session.
type LoginCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	ttl        time.Duration
}

// NewLoginCommandHandler creates a handler for LoginCommand.
// Sessions it opens last ttl.
func NewLoginCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	ttl time.Duration,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
		ttl:        ttl,
	}
}

// Handle returns errs.ErrInvalidCredentials for an unknown email or a wrong password
// alike.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, errs.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		return LoginResult{}, err
	}

	session, err := identity.NewSession(kernel.NewUUID(), user.ID(), stamp(), h.ttl)
	if err != nil {
		return LoginResult{}, err
	}
	if err = uow.SessionRepository().Add(ctx, session); err != nil {
		return LoginResult{}, err
	}

	token, err := h.issuer.Issue(session)
	if err != nil {
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: session.ExpiresAt(), User: user}, nil
}
