package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"annid/internal/config"
	"annid/internal/logging"
	"annid/internal/model"
	"annid/internal/scheduler"
	"annid/internal/storage"
	"annid/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "annid failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.Environment, os.Stderr)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := storage.MigrateUp(repo.DB()); err != nil {
		return err
	}

	if cfg.TrashRetentionDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -cfg.TrashRetentionDays)
		purged, err := repo.PurgeTrashedBefore(context.Background(), cutoff)
		if err != nil {
			return err
		}
		if purged > 0 {
			log.WithField("purged", purged).Info("expired trash removed")
		}
	}

	checker := scheduler.NewChecker(repoSource{repo: repo}, log, cfg.CheckCronSpec, cfg.CheckerBuffer)
	if err := checker.Start(); err != nil {
		return err
	}
	defer checker.Stop()

	m := update.NewModelWithRuntime(repo, checker, update.ExecDesktopNotifier{}, update.RuntimeConfig{
		DesktopNotifications: cfg.DesktopNotifications,
		StateFilePath:        cfg.StatePath,
	})

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// repoSource feeds the checker from the live records in storage.
type repoSource struct {
	repo storage.Repository
}

func (s repoSource) ActiveAnniversaries(ctx context.Context) ([]model.Anniversary, error) {
	live := false
	rows, err := s.repo.ListAnniversaries(ctx, storage.ListFilter{Trashed: &live})
	if err != nil {
		return nil, err
	}
	out := make([]model.Anniversary, 0, len(rows))
	for _, row := range rows {
		out = append(out, storage.ToModel(row))
	}
	return out, nil
}
