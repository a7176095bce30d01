package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cursorcraft/cursorcraft-backend/config"
	"github.com/cursorcraft/cursorcraft-backend/internal/bootstrap"
	"github.com/cursorcraft/cursorcraft-backend/internal/cronjob"
	"github.com/cursorcraft/cursorcraft-backend/internal/logging"
	"github.com/cursorcraft/cursorcraft-backend/internal/projects/repository"
)

func newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Hard-delete projects soft-deleted longer than the retention period",
		Long: `Runs one purge pass against the database configured by the DB_* environment
variables. The retention defaults to PURGE_RETENTION.`,
		RunE: runPurge,
	}
	cmd.Flags().Duration("retention", 0, "override PURGE_RETENTION, e.g. 720h")
	return cmd
}

func runPurge(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return errors.New("DB_HOST is required for purge")
	}
	if r, _ := cmd.Flags().GetDuration("retention"); r > 0 {
		cfg.Purge.Retention = r
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := bootstrap.OpenDB(cmd.Context(), &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	s := cronjob.NewScheduler(repository.NewPostgresStore(db), cfg.Purge.Schedule, cfg.Purge.Retention, logger)
	n, err := s.RunOnce(cmd.Context())
	if err != nil {
		logger.Error("purge failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "purged %d projects\n", n)
	return nil
}
