package audit

import (
	"fmt"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
)

// Action names the event recorded by an Entry.
type Action int

const (
	UnknownAction Action = iota
	Created
	Notified
	Read
	Collected
	Returned
	Deleted
)

func actionNames() map[Action]string {
	return map[Action]string{
		Created:   "created",
		Notified:  "notified",
		Read:      "read",
		Collected: "collected",
		Returned:  "returned",
		Deleted:   "deleted",
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(name string) (Action, error) {
	for action, n := range actionNames() {
		if n == name {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", name))
}

// Validate rejects values outside the known actions.
func (a Action) Validate() error {
	if _, ok := actionNames()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the name stored in the action column.
func (a Action) String() string {
	if name, ok := actionNames()[a]; ok {
		return name
	}
	return "unknown"
}

// ForStatus returns the action recorded when a package enters status.
func ForStatus(status parcel.Status) (Action, error) {
	switch status {
	case parcel.Pending:
		return Created, nil
	case parcel.Collected:
		return Collected, nil
	case parcel.Returned:
		return Returned, nil
	case parcel.Deleted:
		return Deleted, nil
	default:
		return UnknownAction, status.Validate()
	}
}
