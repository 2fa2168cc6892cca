package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"price_tag_app_go/config"
	"price_tag_app_go/handlers"
	"price_tag_app_go/logging"
	"price_tag_app_go/middleware"
	"price_tag_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	logger := logging.NewOrNop(cfg.Environment)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if len(cfg.Defaulted) > 0 {
		logger.Debug("Configuration defaults in use", zap.Strings("keys", cfg.Defaulted))
	}

	middleware.InitAssetVersions(logger)

	// Background artwork shared by every tag
	assets := services.InitializeAssetStore(cfg, logger)
	background := services.NewBackgroundLoader(cfg.BackgroundURL, services.BackgroundOptions{
		Timeout: cfg.BackgroundTimeout,
		Embed:   cfg.BackgroundEmbed,
		Assets:  assets,
		Logger:  logger,
	})
	background.Start(ctx)

	store := services.NewWorkspaceStore(cfg.SessionTTL, logger)
	store.StartCleanup(ctx, 10*time.Minute)

	importLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer importLimiter.Stop()

	e := newServer(cfg, logger, store, background, importLimiter)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
	if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func newServer(cfg *config.Config, logger *zap.Logger, store *services.WorkspaceStore, background *services.BackgroundLoader, importLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.CSPNonce(middleware.PolicyFor(cfg)))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static(services.StaticMount, services.StaticRoot)

	e.GET("/healthz", handlers.HealthHandler(store, background))
	e.GET("/api/tile-scale", handlers.TileScale)

	editor := handlers.NewEditorHandler(store, background, logger)

	// Everything below is bound to a workspace
	app := e.Group("")
	app.Use(middleware.Workspace(store))
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.CSRF(cfg))
	{
		app.GET("/", editor.Page)
		app.GET("/print", editor.PrintPage)

		// HTMX partials
		app.GET("/htmx/sheet", editor.SheetPartial)
		app.GET("/htmx/editor", editor.WorkspacePartial)
		app.POST("/htmx/mode", editor.SetMode)
		app.POST("/htmx/active", editor.SetActive)
		app.PUT("/htmx/tags/:index", editor.UpdateTag)

		app.GET("/api/layout", editor.Layout)
		app.GET("/api/tags/export", editor.ExportTags)
		app.POST("/api/tags/import", editor.ImportTags, importLimiter.Middleware())
	}

	return e
}
