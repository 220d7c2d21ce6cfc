// Package identityrepo persists user accounts and their login sessions.
package identityrepo

import (
	"time"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"size:255;not null"`
	Email        string     `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string     `gorm:"size:255;not null"`
	Role         string     `gorm:"size:20;not null"`
	StoreID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
}

// TableName tells gorm which table stores UserDTO rows.
func (UserDTO) TableName() string {
	return "users"
}

// SessionDTO backs one issued token; the token's jti is the row id.
type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	RevokedAt *time.Time
}

// TableName tells gorm which table stores SessionDTO rows.
func (SessionDTO) TableName() string {
	return "sessions"
}

func userFromDomain(u *identity.User) UserDTO {
	var storeID *uuid.UUID
	if id := u.StoreID(); id != nil {
		raw := id.Bytes()
		storeID = &raw
	}

	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		StoreID:      storeID,
		CreatedAt:    u.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var storeID *kernel.UUID
	if dto.StoreID != nil {
		sID, storeErr := kernel.UUIDFromBytes((*dto.StoreID)[:])
		if storeErr != nil {
			return nil, storeErr
		}
		storeID = &sID
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role, storeID, dto.CreatedAt)
}

func sessionFromDomain(s *identity.Session) SessionDTO {
	return SessionDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		IssuedAt:  s.IssuedAt(),
		ExpiresAt: s.ExpiresAt(),
		RevokedAt: s.RevokedAt(),
	}
}

func sessionToDomain(dto SessionDTO) (*identity.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return identity.RestoreSession(id, userID, dto.IssuedAt, dto.ExpiresAt, dto.RevokedAt)
}
