package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"team-analysis/standup/internal/constants"
	gormModels "team-analysis/standup/internal/models/gorm"
)

// UserRepositoryGORM owns the administrative roster lifecycle: registration,
// role changes, nickname overrides and removal.
type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

// Register inserts the user, or updates name/role/registered_by when the user
// already exists. Returns true when a new row was created.
func (r *UserRepositoryGORM) Register(ctx context.Context, userID, userName string, role constants.Role, registeredBy string) (bool, error) {
	if !role.Valid() {
		return false, fmt.Errorf("invalid role %q", role)
	}

	var existing gormModels.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&existing).Error

	if err == nil {
		existing.UserName = userName
		existing.Role = role
		existing.RegisteredBy = registeredBy
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return false, fmt.Errorf("failed to update user: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}

	user := gormModels.User{
		UserID:       userID,
		UserName:     userName,
		Role:         role,
		RegisteredBy: registeredBy,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

// SetNickname stores a display-name override for an already registered user.
func (r *UserRepositoryGORM) SetNickname(ctx context.Context, userID, nickname string) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("user_id = ?", userID).
		Update("nickname", nickname)

	if res.Error != nil {
		return fmt.Errorf("failed to set nickname: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotRegistered
	}
	return nil
}

// Remove deletes the user from the roster.
func (r *UserRepositoryGORM) Remove(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&gormModels.User{})

	if res.Error != nil {
		return fmt.Errorf("failed to remove user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotRegistered
	}
	return nil
}

// ListAll returns the whole roster ordered by registration time.
func (r *UserRepositoryGORM) ListAll(ctx context.Context) ([]gormModels.User, error) {
	var users []gormModels.User
	err := r.db.WithContext(ctx).
		Order("registered_at, id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
