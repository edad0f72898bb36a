package cmd

import (
	"fmt"
	"os"

	"hr-sync/core/config"
	"hr-sync/core/database"
	"hr-sync/core/logger"
	"hr-sync/feature/integration/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd prepares the environment: database schema and report directory.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema and report directory",
	Long: `Creates the companies, cost_centers and employees tables with their
unique business keys and foreign keys, and ensures the reports directory exists.`,
	RunE: runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	l.Info("Database schema ready", zap.String("driver", cfg.Database.Driver))

	if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	l.Info("Reports directory ready", zap.String("dir", cfg.Report.Dir))

	return nil
}
