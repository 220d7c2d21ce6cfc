package mall

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
)

// ErrStoreIsNotConstructed is returned when a Store was not created through its constructor.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store is a tenant of a shopping center. Packages and loja users belong to a store.
type Store struct {
	id         kernel.UUID
	name       string
	shoppingID kernel.UUID

	isConstructed bool
}

// NewStore validates and creates a store inside the given shopping center.
func NewStore(id kernel.UUID, name string, shoppingID kernel.UUID) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := errors.Join(
		setID(&s.id, id),
		setRequiredText(&s.name, "name", name),
		setID(&s.shoppingID, shoppingID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate reports ErrStoreIsNotConstructed for a zero or hand-built Store.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's name.
func (s *Store) Name() string {
	return s.name
}

// ShoppingID returns the store's shopping ID.
func (s *Store) ShoppingID() kernel.UUID {
	return s.shoppingID
}
