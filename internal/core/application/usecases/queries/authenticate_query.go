package queries

import (
	"errors"
	"strings"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrAuthenticateQueryIsNotConstructed is returned when an AuthenticateQuery was not created through its constructor.
var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery resolves a bearer token into the actor making the request.
type AuthenticateQuery struct {
	token string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery accepts the raw token with or without its "Bearer " prefix.
func NewAuthenticateQuery(token string) (AuthenticateQuery, error) {
	fields := strings.Fields(token)
	if len(fields) > 0 && strings.EqualFold(fields[0], "Bearer") {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return AuthenticateQuery{}, errs.ErrUnauthenticated
	}

	return AuthenticateQuery{token: fields[0], guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateQueryIsNotConstructed if validation fails.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Token returns the bearer token to check.
func (q AuthenticateQuery) Token() string {
	return q.token
}
