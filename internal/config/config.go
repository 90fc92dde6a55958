package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReferenceZone is the fixed civil timezone (UTC-3, no daylight saving) used
// for every "today"/"yesterday" default in the engine.
var ReferenceZone = time.FixedZone("UTC-3", -3*60*60)

// Now returns the current time in the reference timezone.
func Now() time.Time {
	return time.Now().In(ReferenceZone)
}

// Today returns the current calendar date in the reference timezone,
// truncated to midnight.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ReferenceZone)
}

// Config holds the process-lifetime settings read from the environment.
type Config struct {
	AppEnv            string
	SQLitePath        string
	AdminRoleID       string
	DailyChannelID    string
	DailyReminderTime string // HH:MM in the reference timezone
	GatewayWebhookURL string
	GatewayAPIKey     string
	JWTSecret         string
	RedisHost         string
	ListenAddr        string
}

// Load reads configuration from the environment, applying defaults where the
// variable is optional.
func Load() *Config {
	return &Config{
		AppEnv:            Get("APP_ENV", "development"),
		SQLitePath:        Get("SQLITE_PATH", "./data/teamanalysis.db"),
		AdminRoleID:       Get("ADMIN_ROLE_ID", "0"),
		DailyChannelID:    Get("DAILY_CHANNEL_ID", ""),
		DailyReminderTime: Get("DAILY_REMINDER_TIME", "10:00"),
		GatewayWebhookURL: Get("GATEWAY_WEBHOOK_URL", ""),
		GatewayAPIKey:     Get("GATEWAY_API_KEY", ""),
		JWTSecret:         Get("JWT_SECRET", ""),
		RedisHost:         Get("REDIS_HOST", ""),
		ListenAddr:        Get("LISTEN_ADDR", ":8080"),
	}
}

// Get returns an environment variable, or the default when unset.
func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ReminderClock parses the configured DAILY_REMINDER_TIME into hour and
// minute components.
func (c *Config) ReminderClock() (hour, minute int, err error) {
	parts := strings.SplitN(c.DailyReminderTime, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid DAILY_REMINDER_TIME %q, expected HH:MM", c.DailyReminderTime)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid reminder hour %q", parts[0])
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid reminder minute %q", parts[1])
	}

	return hour, minute, nil
}
