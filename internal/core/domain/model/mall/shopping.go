package mall

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
)

// ErrShoppingIsNotConstructed is returned when a Shopping was not created through its constructor.
var ErrShoppingIsNotConstructed = errors.New("Shopping must be created via NewShopping constructor")

// Shopping is a shopping center. It owns many stores.
type Shopping struct {
	id      kernel.UUID
	name    string
	address string

	isConstructed bool
}

// NewShopping validates and creates a shopping center. The address is optional.
func NewShopping(id kernel.UUID, name, address string) (*Shopping, error) {
	s := &Shopping{isConstructed: true}

	if err := errors.Join(
		setID(&s.id, id),
		setRequiredText(&s.name, "name", name),
	); err != nil {
		return nil, err
	}
	s.address = strings.TrimSpace(address)

	return s, nil
}

// Validate reports ErrShoppingIsNotConstructed for a zero or hand-built Shopping.
func (s *Shopping) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShoppingIsNotConstructed
	}
	return nil
}

// ID returns the shopping's unique identifier.
func (s *Shopping) ID() kernel.UUID {
	return s.id
}

// Name returns the shopping's name.
func (s *Shopping) Name() string {
	return s.name
}

// Address returns the shopping's address.
func (s *Shopping) Address() string {
	return s.address
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func setRequiredText(dst *string, field, value string) error {
	value, err := kernel.RequiredText(field, value)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}
