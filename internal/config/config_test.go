package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{
		"ANNID_DB_PATH", "ANNID_STATE_PATH", "ANNID_LOG_LEVEL", "ANNID_ENVIRONMENT",
		"ANNID_CHECK_CRON", "ANNID_DESKTOP_NOTIFICATIONS", "ANNID_CHECKER_BUFFER",
		"ANNID_TRASH_RETENTION_DAYS",
	} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.CheckCronSpec != "* * * * *" || cfg.CheckerBuffer != 64 {
		t.Fatalf("unexpected scheduler defaults: %#v", cfg)
	}
	if cfg.DatabasePath == "" || cfg.StatePath == "" {
		t.Fatalf("expected derived paths, got %#v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("desktop notifications should default to off")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ANNID_DB_PATH", "/tmp/annid.db")
	t.Setenv("ANNID_STATE_PATH", "/tmp/reminders.json")
	t.Setenv("ANNID_LOG_LEVEL", "DEBUG")
	t.Setenv("ANNID_CHECK_CRON", "*/5 * * * *")
	t.Setenv("ANNID_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("ANNID_CHECKER_BUFFER", "8")
	t.Setenv("ANNID_TRASH_RETENTION_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/annid.db" || cfg.StatePath != "/tmp/reminders.json" {
		t.Fatalf("unexpected paths: %#v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level should be normalized, got %q", cfg.LogLevel)
	}
	if cfg.CheckCronSpec != "*/5 * * * *" || cfg.CheckerBuffer != 8 || cfg.TrashRetentionDays != 7 {
		t.Fatalf("unexpected values: %#v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications on")
	}
}

func TestBadNumbersAreIgnored(t *testing.T) {
	t.Setenv("ANNID_CHECKER_BUFFER", "lots")
	t.Setenv("ANNID_TRASH_RETENTION_DAYS", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CheckerBuffer != 64 || cfg.TrashRetentionDays != 30 {
		t.Fatalf("invalid numbers should keep defaults: %#v", cfg)
	}
}
