package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
)

// ShoppingRepository defines the persistence contract for shopping centers.
type ShoppingRepository interface {
	Add(ctx context.Context, aggregate *mall.Shopping) error
	Get(ctx context.Context, id kernel.UUID) (*mall.Shopping, error)
}

// StoreRepository defines the persistence contract for stores.
type StoreRepository interface {
	Add(ctx context.Context, aggregate *mall.Store) error
	Get(ctx context.Context, id kernel.UUID) (*mall.Store, error)
}
