package commands

import (
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

// ErrLogoutCommandIsNotConstructed is returned when a LogoutCommand was not created through its constructor.
var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand revokes the session behind the caller's token.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Actor
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a LogoutCommand. Returns a validation error if an argument is missing or malformed.
func NewLogoutCommand(actor identity.Actor, sessionID kernel.UUID) (LogoutCommand, error) {
	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, sessionID.Validate()); err != nil {
		return LogoutCommand{}, err
	}
	return LogoutCommand{
		actor:     a,
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c LogoutCommand) Actor() identity.Actor {
	return c.actor
}

// SessionID returns the session ID carried by the command.
func (c LogoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
