package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	pg "homestead-architect/internal/adapters/storage/postgres"
	"homestead-architect/internal/config"
	"homestead-architect/internal/platform/logger"

	"github.com/spf13/cobra"
)

const migrateTimeout = 30 * time.Second

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el schema en Postgres (idempotente)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.DBDSN == "" {
			return errors.New("migrate: DB_DSN is required")
		}

		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
		defer func() { _ = log.Sync() }()

		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		return runMigrate(cmd.Context(), db, log)
	},
}

func runMigrate(ctx context.Context, db *sql.DB, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	if err := pg.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("schema applied", nil)
	return nil
}
