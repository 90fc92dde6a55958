package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sqlx.DB

// schema is bootstrapped on startup; SQLite has no migration story small
// enough to justify a tool here.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL UNIQUE,
	user_name TEXT NOT NULL,
	nickname TEXT,
	role TEXT NOT NULL,
	registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	registered_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_updates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	report_date TEXT NOT NULL,
	content TEXT NOT NULL,
	submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	last_updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(user_id, report_date)
);

CREATE INDEX IF NOT EXISTS idx_daily_updates_report_date ON daily_updates(report_date);

CREATE TABLE IF NOT EXISTS ignored_dates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	created_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feature_toggles (
	name TEXT PRIMARY KEY,
	enabled INTEGER NOT NULL DEFAULT 0
);

INSERT OR IGNORE INTO feature_toggles (name, enabled) VALUES ('daily', 1);
INSERT OR IGNORE INTO feature_toggles (name, enabled) VALUES ('daily_collection', 1);
`

// InitSQLite opens the SQLite database, applies the schema, and stores the
// handle in the package-level DB.
func InitSQLite(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("sqlite3", dsn)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return err
	}

	// A single writer at a time keeps SQLITE_BUSY out of the picture.
	DB.SetMaxOpenConns(1)

	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// OpenMemory returns a fresh in-memory database with the schema applied.
// Test fixtures only.
func OpenMemory() (*sqlx.DB, error) {
	conn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
