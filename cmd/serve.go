package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mtg-collector/core/config"
	"mtg-collector/core/database"
	"mtg-collector/core/logger"
	"mtg-collector/core/middleware/rayid"
	"mtg-collector/feature/collection"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd exposes the collection read-only over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the collection read-only over HTTP",
	Long: `Serve starts an HTTP server with two endpoints:

  GET /health      liveness check
  GET /collection  every copy in insertion order

The server never mutates the store; append and remove stay CLI-only.`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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
	defer database.Close(db)

	store := collection.NewStore(db)
	if err := store.Migrate(); err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID first so every request is traceable
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		rl.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			rl.Error("Request error", zap.Error(err))
		}
		return err
	})

	handler := collection.NewHandler(collection.NewService(store, l))
	handler.RegisterRoutes(app)

	go func() {
		l.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	l.Info("Shutting down server...")
	return app.Shutdown()
}
