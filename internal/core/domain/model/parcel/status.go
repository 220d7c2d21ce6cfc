package parcel

import (
	"fmt"

	"mailroom/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	Pending ──┬──> Collected ──┐
//	          ├──> Returned ───┼──> Deleted
//	          └────────────────┘
//
// Collected, Returned and Deleted are terminal with respect to Pending: no transition
// leads back to Pending, and the only move between terminal states is into Deleted.
type Status int

const (
	// UnknownStatus (0) catches uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status: the package is waiting at the front desk.
	Pending

	// Collected means the package was handed over against evidence.
	Collected

	// Returned means the package was sent back to the sender.
	Returned

	// Deleted is the soft-delete marker; the record is retained.
	Deleted
)

func statusNames() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Collected: "collected",
		Returned:  "returned",
		Deleted:   "deleted",
	}
}

// ParseStatus maps the wire/database name onto a Status.
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames() {
		if n == name {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the Status is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "pending", "collected", "returned", "deleted" or "unknown".
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the package has left the front desk queue.
func (s Status) IsTerminal() bool {
	return s == Collected || s == Returned || s == Deleted
}

// Collect transitions Pending to Collected.
func (s Status) Collect() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), Collected.String())
	}
	return Collected, nil
}

// Return transitions Pending to Returned.
func (s Status) Return() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), Returned.String())
	}
	return Returned, nil
}

// Delete transitions Pending, Collected or Returned to Deleted.
// Deleting an already deleted package is an invalid transition, not a no-op.
func (s Status) Delete() (Status, error) {
	if s != Pending && s != Collected && s != Returned {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), Deleted.String())
	}
	return Deleted, nil
}

// ValidateEvidence checks the consistency between status and collection evidence:
//   - Collected packages must have evidence
//   - Pending and Returned packages must not have evidence
//   - Deleted packages may have either (a collected package keeps its evidence when deleted)
func (s Status) ValidateEvidence(hasEvidence bool) error {
	switch {
	case s == Collected && !hasEvidence:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status without collection evidence", s),
		)
	case (s == Pending || s == Returned) && hasEvidence:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status with collection evidence", s),
		)
	}
	return nil
}
