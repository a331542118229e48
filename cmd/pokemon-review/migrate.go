package main

import (
	"fmt"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/deppfellow/pokemon-review/internal/database"
	"github.com/deppfellow/pokemon-review/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  `Applies the embedded migrations to the configured PostgreSQL database.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.UsesPostgres() {
			return fmt.Errorf("migrate needs the postgres store driver, got %q", cfg.Store.Driver)
		}

		log := logger.NewLogger(cfg.Observability)
		return database.Migrate(cmd.Context(), &log, cfg)
	},
}
