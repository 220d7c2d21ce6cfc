package commands

import (
	"errors"
	"time"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// ErrNotifyPendingPackagesCommandIsNotConstructed is returned when a NotifyPendingPackagesCommand was not created through its constructor.
var ErrNotifyPendingPackagesCommandIsNotConstructed = errors.New(
	"NotifyPendingPackagesCommand must be created via NewNotifyPendingPackagesCommand constructor",
)

// NotifyPendingPackagesCommand asks for a reminder on every package waiting longer than
// After. It is issued by the scheduler, not by a user.
type NotifyPendingPackagesCommand struct { //nolint:recvcheck //using for validation
	after time.Duration
	now   time.Time

	guard guard.ConstructorGuard
}

// NewNotifyPendingPackagesCommand creates the command for one reminder run.
func NewNotifyPendingPackagesCommand(after time.Duration, now time.Time) (NotifyPendingPackagesCommand, error) {
	if after <= 0 {
		return NotifyPendingPackagesCommand{}, errs.NewValueIsOutOfRangeError("after", after, "1ns", "any")
	}
	if now.IsZero() {
		return NotifyPendingPackagesCommand{}, errs.NewValueIsRequiredError("now")
	}
	return NotifyPendingPackagesCommand{
		after: after,
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyPendingPackagesCommandIsNotConstructed if validation fails.
func (c NotifyPendingPackagesCommand) Validate() error {
	return c.guard.Validate(ErrNotifyPendingPackagesCommandIsNotConstructed)
}

// After returns how long a package may stay pending before a reminder.
func (c NotifyPendingPackagesCommand) After() time.Duration {
	return c.after
}

// Now returns the reference time of the run.
func (c NotifyPendingPackagesCommand) Now() time.Time {
	return c.now
}
