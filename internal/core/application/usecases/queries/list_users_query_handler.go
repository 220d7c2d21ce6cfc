package queries

import (
	"context"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListUsersQueryHandler handles ListUsersQuery.
type ListUsersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListUsersQueryHandler creates a handler for ListUsersQuery that reads straight from db.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle lists every user ordered by name.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserProfile, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), identity.ManageUsers); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT` + userProfileColumns + `
		FROM users u
		LEFT JOIN stores s ON s.id = u.store_id
		ORDER BY u.name, u.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserProfile, 0)
	for rows.Next() {
		profile, scanErr := scanUserProfile(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
