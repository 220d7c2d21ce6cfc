package commands

import (
	"errors"
	"strings"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrLoginCommandIsNotConstructed is returned when a LoginCommand was not created through its constructor.
var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand exchanges credentials for a bearer token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a LoginCommand. The email is normalized to lower case.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	cmd := LoginCommand{guard: guard.NewConstructorGuard()}

	var problems []error
	cmd.email = strings.ToLower(strings.TrimSpace(email))
	if cmd.email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	cmd.password = password
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the email carried by the command.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the password carried by the command.
func (c LoginCommand) Password() string {
	return c.password
}
