package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the app reads from the environment. A .env file
// in the working directory is honored but never overrides real env vars.
type Config struct {
	DatabasePath         string
	StatePath            string
	LogLevel             string
	Environment          string
	CheckCronSpec        string
	DesktopNotifications bool
	CheckerBuffer        int
	TrashRetentionDays   int
}

func Default() Config {
	return Config{
		LogLevel:           "info",
		Environment:        "development",
		CheckCronSpec:      "* * * * *",
		CheckerBuffer:      64,
		TrashRetentionDays: 30,
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if v := strings.TrimSpace(os.Getenv("ANNID_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("ANNID_STATE_PATH")); v != "" {
		cfg.StatePath = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("ANNID_LOG_LEVEL"))); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("ANNID_ENVIRONMENT"))); v != "" {
		cfg.Environment = v
	}
	if v := strings.TrimSpace(os.Getenv("ANNID_CHECK_CRON")); v != "" {
		cfg.CheckCronSpec = v
	}
	if v, ok := envBool("ANNID_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := envInt("ANNID_CHECKER_BUFFER"); ok && v > 0 {
		cfg.CheckerBuffer = v
	}
	if v, ok := envInt("ANNID_TRASH_RETENTION_DAYS"); ok && v >= 0 {
		cfg.TrashRetentionDays = v
	}

	if cfg.DatabasePath == "" || cfg.StatePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve home directory: %w", err)
		}
		dataDir := filepath.Join(home, ".annid")
		if cfg.DatabasePath == "" {
			cfg.DatabasePath = filepath.Join(dataDir, "annid.db")
		}
		if cfg.StatePath == "" {
			cfg.StatePath = filepath.Join(dataDir, "reminders.json")
		}
	}

	return cfg, nil
}

func envInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
