package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hr-sync/core/config"
	"hr-sync/core/database"
	"hr-sync/core/loader"
	"hr-sync/core/logger"
	"hr-sync/core/middleware/auth"
	"hr-sync/core/middleware/rayid"
	"hr-sync/core/scheduler"
	"hr-sync/core/storage"
	"hr-sync/feature/integration"
	"hr-sync/feature/integration/source"
	"hr-sync/feature/integration/store"
	"hr-sync/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HR integration service",
	Long: `Runs the integration once at startup, schedules it on the configured
interval and serves the administrative HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Build the report sinks
		fileSink, err := report.NewFileSink(cfg.Report.Dir, logg)
		if err != nil {
			logg.Fatal("Failed to create report directory", zap.Error(err))
		}
		var sink report.Sink = fileSink
		if cfg.Report.S3Upload {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			sink = report.MultiSink{fileSink, report.NewS3Sink(client, cfg.Storage.Bucket, logg)}
			logg.Info("Report archival to object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Build the pipeline feature
		src := source.NewClient(cfg.Source, logg)
		integrationFeature := integration.NewFeature(src, store.New(db), sink, logg)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware: ray id first so everything is traceable
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Protect the API
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		mgr := loader.NewManager()
		mgr.Register(integrationFeature)
		mgr.Register(report.NewFeature(fileSink, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Schedule integration runs
		sched := scheduler.New(cfg.Scheduler, logg, func() {
			if _, err := integrationFeature.Service().Run(context.Background()); err != nil {
				logg.Error("Integration run failed", zap.Error(err))
			}
		})
		if err := sched.Start(); err != nil {
			logg.Fatal("Failed to start scheduler", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		sched.Stop()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
