package identity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrStoreRequiredForLoja is returned when a loja user has no store.
	ErrStoreRequiredForLoja = errs.NewValueIsRequiredErrorWithCause("store_id", errors.New("loja users belong to exactly one store"))

	// ErrStoreNotAllowed is returned when a non-loja user is given a store.
	ErrStoreNotAllowed = errs.NewValueIsInvalidErrorWithCause("store_id", errors.New("only loja users are scoped to a store"))
)

// User is an account able to sign in. Password hashing is done outside the domain;
// the aggregate only carries the hash.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	storeID      *kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewUser validates and creates a user. The email is trimmed and lower-cased.
func NewUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	storeID *kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRoleAndStore(role, storeID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user, applying the same invariants as NewUser.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	storeID *kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	return NewUser(id, name, email, passwordHash, role, storeID, createdAt)
}

// Validate reports ErrUserIsNotConstructed for a zero or hand-built User.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// StoreID returns a copy of the store the user is scoped to, or nil.
func (u *User) StoreID() *kernel.UUID {
	if u.storeID == nil {
		return nil
	}
	id := *u.storeID
	return &id
}

// Actor returns the capability token used to authorize this user's requests.
func (u *User) Actor() Actor {
	return newActor(u.id, u.role, u.StoreID())
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name, err := kernel.RequiredText("name", name)
	if err != nil {
		return err
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRoleAndStore(role Role, storeID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch {
	case role.IsStoreScoped() && storeID == nil:
		return ErrStoreRequiredForLoja
	case !role.IsStoreScoped() && storeID != nil:
		return ErrStoreNotAllowed
	}

	if storeID != nil {
		if err := storeID.Validate(); err != nil {
			return err
		}
		id := *storeID
		u.storeID = &id
	}
	u.role = role
	return nil
}
