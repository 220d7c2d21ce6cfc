package ports

import (
	"context"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A duplicate email is reported as an
	// errs.ValueIsInvalidError on "email".
	Add(ctx context.Context, aggregate *identity.User) error

	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByEmail looks the user up by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}

// SessionRepository stores issued token sessions.
type SessionRepository interface {
	Add(ctx context.Context, session *identity.Session) error
	Update(ctx context.Context, session *identity.Session) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Session, error)
}
