package queries

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShoppingsQueryHandler handles ListShoppingsQuery.
type ListShoppingsQueryHandler struct {
	db *gorm.DB
}

// NewListShoppingsQueryHandler creates a handler for ListShoppingsQuery that reads straight from db.
func NewListShoppingsQueryHandler(db *gorm.DB) ListShoppingsQueryHandler {
	return ListShoppingsQueryHandler{db: db}
}

// Handle returns the shopping centers ordered by name with the number of stores in each.
func (h ListShoppingsQueryHandler) Handle(ctx context.Context, query ListShoppingsQuery) ([]ShoppingSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sh.id,
			sh.name,
			sh.address,
			COUNT(s.id)
		FROM shoppings sh
		LEFT JOIN stores s ON s.shopping_id = sh.id
		GROUP BY sh.id, sh.name, sh.address
		ORDER BY sh.name, sh.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shoppings := make([]ShoppingSummary, 0)
	for rows.Next() {
		var (
			shopping ShoppingSummary
			id       uuid.UUID
		)
		if err = rows.Scan(&id, &shopping.Name, &shopping.Address, &shopping.StoreCount); err != nil {
			return nil, err
		}
		if shopping.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		shoppings = append(shoppings, shopping)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shoppings, nil
}
