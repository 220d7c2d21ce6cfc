package identityrepo

import (
	"context"
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserRepository implements UserRepository using GORM. The database connection must
// be opened with gorm.Config.TranslateError so that unique violations surface as
// gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository creates a repository that reports added users to tracker.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{db: db, tracker: tracker}
}

// Add inserts a new user.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *identity.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already registered"))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get returns an ObjectNotFoundError when no user has id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetByEmail looks the user up by the normalized email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a session repository over db.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add inserts a new session.
func (r *GormSessionRepository) Add(ctx context.Context, session *identity.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(session)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes revoked_at; the other columns never change.
func (r *GormSessionRepository) Update(ctx context.Context, session *identity.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("id = ?", session.ID().Bytes()).
		Update("revoked_at", session.RevokedAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", session.ID().String())
	}
	return nil
}

// Get returns an ObjectNotFoundError when no session has id.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return sessionToDomain(dto)
}
