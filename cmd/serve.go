package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tvgu-data-hub/core/config"
	"tvgu-data-hub/core/loader"
	"tvgu-data-hub/core/logger"
	"tvgu-data-hub/core/middleware/auth"
	"tvgu-data-hub/core/middleware/rayid"
	"tvgu-data-hub/feature/hub"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "tvgu-data-hub/docs/swagger"
)

// @title TvGU Data Hub API
// @version 1.0
// @description Reconciled structs, departments, groups, teachers, subjects, places and lessons of TvGU.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset over HTTP",
	Long:  `Starts the HTTP server. The dataset is built on first request, cached and optionally refreshed on a schedule.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	var db *gorm.DB
	if cfg.Sources.TeachersFromDB {
		if db, err = connectDatabase(cfg, logg, true); err != nil {
			return err
		}
	}

	src, _, err := buildSources(cfg, logg, db)
	if err != nil {
		return err
	}

	svc := hub.NewService(src, cfg.Hub.Options(), logg)
	cache := hub.NewCache(svc, cfg.Server.CacheTTL())

	if cfg.Server.HasRefresh() {
		refresher, err := hub.NewRefresher(cache, cfg.Server.RefreshCron, logg)
		if err != nil {
			return err
		}
		refresher.Start()
		defer refresher.Stop()
		logg.Info("Scheduled dataset refresh", zap.String("cron", cfg.Server.RefreshCron))
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(hub.NewFeature(cache, logg))

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
