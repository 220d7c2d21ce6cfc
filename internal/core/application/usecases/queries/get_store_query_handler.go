package queries

import (
	"context"
	"database/sql"
	"errors"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStoreQueryHandler handles GetStoreQuery.
type GetStoreQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetStoreQueryHandler creates a handler for GetStoreQuery that reads straight from db.
func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle refuses store-scoped actors asking for another store before looking anything
// up, so they cannot learn which stores exist.
func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (StoreDetail, error) {
	if err := query.Validate(); err != nil {
		return StoreDetail{}, err
	}
	if err := h.policy.AuthorizeStoreView(query.Actor(), query.StoreID()); err != nil {
		return StoreDetail{}, err
	}

	db := h.db.WithContext(ctx)
	row := db.Raw(`
		SELECT`+storeSummaryColumns+`
		FROM stores s
		JOIN shoppings sh ON sh.id = s.shopping_id
		WHERE s.id = ?
	`, query.StoreID().Bytes()).Row()

	store, err := scanStoreSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoreDetail{}, errs.NewObjectNotFoundError("store", query.StoreID())
	}
	if err != nil {
		return StoreDetail{}, err
	}

	rows, err := db.Raw(`
		SELECT`+packageSummaryColumns+`
		FROM packages p
		JOIN stores s ON s.id = p.store_id
		WHERE p.store_id = ? AND p.status <> ?
		ORDER BY p.received_at DESC, p.id
		LIMIT ?
	`, query.StoreID().Bytes(), parcel.Deleted.String(), RecentPackagesLimit).Rows()
	if err != nil {
		return StoreDetail{}, err
	}
	defer rows.Close()

	detail := StoreDetail{StoreSummary: store, RecentPackages: make([]PackageSummary, 0)}
	for rows.Next() {
		summary, scanErr := scanPackageSummary(rows)
		if scanErr != nil {
			return StoreDetail{}, scanErr
		}
		detail.RecentPackages = append(detail.RecentPackages, summary)
	}

	if err = rows.Err(); err != nil {
		return StoreDetail{}, err
	}
	return detail, nil
}
