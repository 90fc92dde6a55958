package gorm

import (
	"time"

	"team-analysis/standup/internal/constants"
)

type User struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       string         `gorm:"column:user_id;uniqueIndex"`
	UserName     string         `gorm:"column:user_name"`
	Nickname     *string        `gorm:"column:nickname"`
	Role         constants.Role `gorm:"column:role"`
	RegisteredAt time.Time      `gorm:"column:registered_at;autoCreateTime"`
	RegisteredBy string         `gorm:"column:registered_by"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
