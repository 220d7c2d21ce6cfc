package identity

import (
	"errors"
	"fmt"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

var (
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrSessionInactive is returned for revoked or expired sessions.
	ErrSessionInactive = fmt.Errorf("%w: session is revoked or expired", errs.ErrUnauthenticated)
)

// Session is one issued bearer token. Its id is the token's jti, so a token stays valid
// only while its session row is active.
type Session struct {
	id        kernel.UUID
	userID    kernel.UUID
	issuedAt  time.Time
	expiresAt time.Time
	revokedAt *time.Time

	isConstructed bool
}

// NewSession opens a session for the user lasting ttl from issuedAt.
func NewSession(id, userID kernel.UUID, issuedAt time.Time, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "any")
	}
	return RestoreSession(id, userID, issuedAt, issuedAt.Add(ttl), nil)
}

// RestoreSession rebuilds a session loaded from storage.
func RestoreSession(id, userID kernel.UUID, issuedAt, expiresAt time.Time, revokedAt *time.Time) (*Session, error) {
	var userErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	if err := errors.Join(id.Validate(), userErr); err != nil {
		return nil, err
	}
	if !expiresAt.After(issuedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("expires_at", errors.New("must be after issued_at"))
	}

	s := &Session{
		id:            id,
		userID:        userID,
		issuedAt:      issuedAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}
	if revokedAt != nil {
		r := *revokedAt
		s.revokedAt = &r
	}
	return s, nil
}

// Validate reports ErrSessionIsNotConstructed for a zero or hand-built Session.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// UserID returns the session's user ID.
func (s *Session) UserID() kernel.UUID {
	return s.userID
}

// IssuedAt returns when the session was opened.
func (s *Session) IssuedAt() time.Time {
	return s.issuedAt
}

// ExpiresAt returns when the session stops being accepted.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// RevokedAt returns when the session was revoked, or nil while it is not.
func (s *Session) RevokedAt() *time.Time {
	if s.revokedAt == nil {
		return nil
	}
	r := *s.revokedAt
	return &r
}

// CheckActive returns ErrSessionInactive once the session is revoked or past its expiry.
func (s *Session) CheckActive(now time.Time) error {
	if s.revokedAt != nil || !now.Before(s.expiresAt) {
		return ErrSessionInactive
	}
	return nil
}

// Revoke ends the session. Revoking twice keeps the first revocation time.
func (s *Session) Revoke(now time.Time) {
	if s.revokedAt != nil {
		return
	}
	s.revokedAt = &now
}
