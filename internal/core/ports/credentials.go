package ports

import (
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns errs.ErrInvalidCredentials when the password does not match.
	Compare(hash, password string) error
}

// TokenClaims are the identifiers carried by a bearer token.
type TokenClaims struct {
	SessionID kernel.UUID
	UserID    kernel.UUID
}

// TokenIssuer signs and verifies bearer tokens for sessions.
type TokenIssuer interface {
	Issue(session *identity.Session) (string, error)

	// Parse verifies the token and returns its claims, or an error wrapping
	// errs.ErrUnauthenticated.
	Parse(token string) (TokenClaims, error)
}
