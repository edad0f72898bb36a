package cmd

import (
	"context"
	"fmt"

	"hr-sync/core/config"
	"hr-sync/core/database"
	"hr-sync/core/logger"
	"hr-sync/core/storage"
	"hr-sync/feature/integration"
	"hr-sync/feature/integration/source"
	"hr-sync/feature/integration/store"
	"hr-sync/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd executes a single integration run and exits.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one integration run and exit",
	Long: `Fetches the colaborador data set once, reconciles it into the database
and writes the run report. Intended for manual runs and external schedulers.

The process exits non-zero only when the source is unavailable or the report
could not be emitted; per-record failures are recorded in the report.`,
	RunE: runOnce,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	fileSink, err := report.NewFileSink(cfg.Report.Dir, l)
	if err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	var sink report.Sink = fileSink
	if cfg.Report.S3Upload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		sink = report.MultiSink{fileSink, report.NewS3Sink(client, cfg.Storage.Bucket, l)}
	}

	src := source.NewClient(cfg.Source, l)
	svc := integration.NewService(src, store.New(db), sink, l)

	rep, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	l.Info("Run complete",
		zap.Int("processed", rep.Processed),
		zap.Int("inserted", rep.Inserted),
		zap.Int("updated", rep.Updated),
		zap.Int("skipped", rep.Skipped),
		zap.Int("errors", len(rep.Errors)))
	return nil
}
