package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"finforge/core/config"
	"finforge/core/database"
	"finforge/core/logger"
	"finforge/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the read-only reporting HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reporting API over HTTP",
	Long: `Starts an HTTP server exposing read-only reporting endpoints:

  GET /api/stats       per-table record counts
  GET /api/history     load history by insertion date
  GET /api/breakdowns  per-type rollups
  GET /api/quality     data quality report`,
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

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// Request logging middleware
		app.Use(func(c *fiber.Ctx) error {
			logg.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				logg.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 5. Register reporting routes
		handler := report.NewHandler(report.NewService(db, logg))
		handler.RegisterRoutes(app)

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		logg.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logg.Error("Server shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
