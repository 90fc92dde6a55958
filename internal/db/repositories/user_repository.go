package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/models/entities"
)

// UserRepository is the read path over the roster used by the compliance
// engine and the scheduler. Lifecycle writes go through UserRepositoryGORM.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db}
}

// FindByID returns the user, or nil when not registered.
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRowxContext(ctx, constants.GetUserByID, userID).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole returns all users with the role, in registration order.
func (r *UserRepository) ListByRole(ctx context.Context, role constants.Role) ([]entities.User, error) {
	users := []entities.User{}
	err := r.db.SelectContext(ctx, &users, constants.GetUsersByRole, role)
	return users, err
}

// IDsByRole returns just the platform ids of users with the role.
func (r *UserRepository) IDsByRole(ctx context.Context, role constants.Role) ([]string, error) {
	users, err := r.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	return ids, nil
}

// CheckIsPO reports whether the user is registered as a product owner.
func (r *UserRepository) CheckIsPO(ctx context.Context, userID string) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == constants.RoleProductOwner, nil
}
