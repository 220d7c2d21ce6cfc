package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const storeSummaryColumns = `
			s.id,
			s.name,
			sh.id,
			sh.name`

func scanStoreSummary(row rowScanner) (StoreSummary, error) {
	var (
		store          StoreSummary
		id, shoppingID uuid.UUID
	)
	if err := row.Scan(&id, &store.Name, &shoppingID, &store.ShoppingName); err != nil {
		return StoreSummary{}, err
	}

	var err error
	if store.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return StoreSummary{}, err
	}
	if store.ShoppingID, err = kernel.UUIDFromGoogle(shoppingID); err != nil {
		return StoreSummary{}, err
	}
	return store, nil
}

// ListStoresQueryHandler handles ListStoresQuery.
type ListStoresQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListStoresQueryHandler creates a handler for ListStoresQuery that reads straight from db.
func NewListStoresQueryHandler(db *gorm.DB) ListStoresQueryHandler {
	return ListStoresQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns every store for actors holding ViewAllStores and only the actor's own
// store otherwise.
func (h ListStoresQueryHandler) Handle(ctx context.Context, query ListStoresQuery) ([]StoreSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.policy.StoreScope(query.Actor())
	if err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT` + storeSummaryColumns + `
		FROM stores s
		JOIN shoppings sh ON sh.id = s.shopping_id`
	var args []any
	if scope.Restricted() {
		sqlQuery += `
		WHERE s.id = ?`
		args = append(args, scope.StoreID.Bytes())
	}
	sqlQuery += `
		ORDER BY s.name, s.id`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]StoreSummary, 0)
	for rows.Next() {
		store, scanErr := scanStoreSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}
