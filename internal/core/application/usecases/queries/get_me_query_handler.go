package queries

import (
	"context"
	"database/sql"
	"errors"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile describes a user account with its role label and store.
type UserProfile struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      identity.Role
	StoreID   *kernel.UUID
	StoreName *string
}

// RoleLabel is the human readable role name shown in the interface.
func (p UserProfile) RoleLabel() string {
	return p.Role.Label()
}

const userProfileColumns = `
			u.id,
			u.name,
			u.email,
			u.role,
			u.store_id,
			s.name`

func scanUserProfile(row rowScanner) (UserProfile, error) {
	var (
		profile UserProfile
		id      uuid.UUID
		storeID *uuid.UUID
		role    string
	)

	if err := row.Scan(&id, &profile.Name, &profile.Email, &role, &storeID, &profile.StoreName); err != nil {
		return UserProfile{}, err
	}

	var err error
	if profile.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return UserProfile{}, err
	}
	if profile.Role, err = identity.ParseRole(role); err != nil {
		return UserProfile{}, err
	}
	if profile.StoreID, err = optionalUUID(storeID); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

// GetMeQueryHandler handles GetMeQuery.
type GetMeQueryHandler struct {
	db *gorm.DB
}

// NewGetMeQueryHandler creates a handler for GetMeQuery that reads straight from db.
func NewGetMeQueryHandler(db *gorm.DB) GetMeQueryHandler {
	return GetMeQueryHandler{db: db}
}

// Handle returns the profile of the actor.
func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (UserProfile, error) {
	if err := query.Validate(); err != nil {
		return UserProfile{}, err
	}

	userID := query.Actor().UserID()
	row := h.db.WithContext(ctx).Raw(`
		SELECT`+userProfileColumns+`
		FROM users u
		LEFT JOIN stores s ON s.id = u.store_id
		WHERE u.id = ?
	`, userID.Bytes()).Row()

	profile, err := scanUserProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserProfile{}, errs.NewObjectNotFoundError("user", userID)
	}
	return profile, err
}
