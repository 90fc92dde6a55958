package entities

import (
	"time"

	"team-analysis/standup/internal/constants"
)

type User struct {
	ID           int64          `db:"id" json:"id"`
	UserID       string         `db:"user_id" json:"user_id"`
	UserName     string         `db:"user_name" json:"user_name"`
	Nickname     *string        `db:"nickname" json:"nickname,omitempty"`
	Role         constants.Role `db:"role" json:"role"`
	RegisteredAt time.Time      `db:"registered_at" json:"registered_at"`
	RegisteredBy string         `db:"registered_by" json:"registered_by"`
}

// DisplayName prefers the nickname override when one is set.
func (u *User) DisplayName() string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	return u.UserName
}
