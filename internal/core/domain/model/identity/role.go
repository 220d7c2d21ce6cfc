package identity

import (
	"fmt"

	"mailroom/internal/pkg/errs"
)

// Role is the closed enumeration of user roles.
type Role int

const (
	// UnknownRole (0) catches uninitialized values.
	UnknownRole Role = iota

	// SuperAdmin administers the whole installation, including user accounts.
	SuperAdmin

	// Admin is the mall manager: everything except user management.
	Admin

	// Portaria is the reception desk: intake, pickup and returns.
	Portaria

	// Loja is a store manager, restricted to the packages of one store.
	Loja
)

func roleNames() map[Role]string {
	return map[Role]string{
		SuperAdmin: "super_admin",
		Admin:      "admin",
		Portaria:   "portaria",
		Loja:       "loja",
	}
}

func roleLabels() map[Role]string {
	return map[Role]string{
		SuperAdmin: "System Administrator",
		Admin:      "Mall Manager",
		Portaria:   "Reception Desk",
		Loja:       "Store Manager",
	}
}

// ParseRole maps the wire/database name onto a Role.
func ParseRole(name string) (Role, error) {
	for role, n := range roleNames() {
		if n == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", name))
}

// Validate rejects UnknownRole and values outside the enumeration.
func (r Role) Validate() error {
	if _, ok := roleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name ("super_admin", "admin", "portaria", "loja") or "unknown".
func (r Role) String() string {
	if name, ok := roleNames()[r]; ok {
		return name
	}
	return "unknown"
}

// Label is the display name shown to operators.
func (r Role) Label() string {
	if label, ok := roleLabels()[r]; ok {
		return label
	}
	return r.String()
}

// IsStoreScoped reports whether users of this role only see their own store.
func (r Role) IsStoreScoped() bool {
	return r == Loja
}

// Can reports whether the role holds the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range capabilityTable()[r] {
		if granted == c {
			return true
		}
	}
	return false
}
