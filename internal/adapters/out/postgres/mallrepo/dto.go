// Package mallrepo persists shopping centers and their stores.
package mallrepo

import (
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"

	"github.com/google/uuid"
)

// ShoppingDTO is the row of the shoppings table.
type ShoppingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Address   string    `gorm:"size:255;not null"`
	CreatedAt time.Time
}

// TableName tells gorm which table stores ShoppingDTO rows.
func (ShoppingDTO) TableName() string {
	return "shoppings"
}

// StoreDTO is the row of the stores table.
type StoreDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:255;not null;index"`
	ShoppingID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
}

// TableName tells gorm which table stores StoreDTO rows.
func (StoreDTO) TableName() string {
	return "stores"
}

func shoppingFromDomain(s *mall.Shopping) ShoppingDTO {
	return ShoppingDTO{
		ID:      s.ID().Bytes(),
		Name:    s.Name(),
		Address: s.Address(),
	}
}

func shoppingToDomain(dto ShoppingDTO) (*mall.Shopping, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return mall.NewShopping(id, dto.Name, dto.Address)
}

func storeFromDomain(s *mall.Store) StoreDTO {
	return StoreDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		ShoppingID: s.ShoppingID().Bytes(),
	}
}

func storeToDomain(dto StoreDTO) (*mall.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shoppingID, err := kernel.UUIDFromBytes(dto.ShoppingID[:])
	if err != nil {
		return nil, err
	}
	return mall.NewStore(id, dto.Name, shoppingID)
}
