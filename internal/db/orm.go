package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ORM *gorm.DB

// InitSQLiteORM opens the same database file through GORM for the
// administrative roster lifecycle. Must be called after InitSQLite so the
// schema already exists.
func InitSQLiteORM(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)

	orm, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite via GORM: %w", err)
	}

	ORM = orm
	return orm, nil
}
