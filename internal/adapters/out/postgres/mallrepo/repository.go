package mallrepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShoppingRepository implements ShoppingRepository using GORM.
type GormShoppingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShoppingRepository creates a repository that reports added shoppings to tracker.
func NewGormShoppingRepository(db *gorm.DB, tracker aggregateTracker) *GormShoppingRepository {
	return &GormShoppingRepository{db: db, tracker: tracker}
}

// Add inserts a new shopping.
func (r *GormShoppingRepository) Add(ctx context.Context, aggregate *mall.Shopping) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shoppingFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get returns an ObjectNotFoundError when no shopping has id.
func (r *GormShoppingRepository) Get(ctx context.Context, id kernel.UUID) (*mall.Shopping, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShoppingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shopping", id.String())
		}
		return nil, err
	}

	return shoppingToDomain(dto)
}

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormStoreRepository creates a repository that reports added stores to tracker.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{db: db, tracker: tracker}
}

// Add inserts a new store.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *mall.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get returns an ObjectNotFoundError when no store has id.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*mall.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return storeToDomain(dto)
}
