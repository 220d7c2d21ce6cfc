package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// AuthenticateQueryResponse is the caller of an authenticated request.
type AuthenticateQueryResponse struct {
	Actor     identity.Actor
	SessionID kernel.UUID
}

// AuthenticateQueryHandler checks the token signature, then that its session is still
// active and its user still exists. Every failure is reported as errs.ErrUnauthenticated.
type AuthenticateQueryHandler struct {
	issuer   ports.TokenIssuer
	users    ports.UserRepository
	sessions ports.SessionRepository
	now      func() time.Time
}

// NewAuthenticateQueryHandler creates a handler that checks tokens against the stored sessions.
func NewAuthenticateQueryHandler(
	issuer ports.TokenIssuer,
	users ports.UserRepository,
	sessions ports.SessionRepository,
) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{
		issuer:   issuer,
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

// WithClock returns a copy of the handler that checks session expiry against now.
func (h AuthenticateQueryHandler) WithClock(now func() time.Time) AuthenticateQueryHandler {
	h.now = now
	return h
}

// Handle resolves the token to the actor behind it.
// Any token that does not map to an active session fails with errs.ErrUnauthenticated.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	claims, err := h.issuer.Parse(query.Token())
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	session, err := h.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return AuthenticateQueryResponse{}, unauthenticated(err)
	}
	if !session.UserID().IsEqual(claims.UserID) {
		return AuthenticateQueryResponse{}, fmt.Errorf("%w: token subject does not own the session", errs.ErrUnauthenticated)
	}
	if err = session.CheckActive(h.now()); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	user, err := h.users.Get(ctx, session.UserID())
	if err != nil {
		return AuthenticateQueryResponse{}, unauthenticated(err)
	}

	return AuthenticateQueryResponse{
		Actor:     user.Actor(),
		SessionID: session.ID(),
	}, nil
}

// unauthenticated hides missing sessions and users behind ErrUnauthenticated. Other
// errors are infrastructure failures and pass through.
func unauthenticated(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}
	return err
}
