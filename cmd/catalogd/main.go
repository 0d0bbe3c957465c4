package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/suis3/catalog/cmd/catalogd/routes"
	"github.com/suis3/catalog/common/bootstrap"
	"github.com/suis3/catalog/common/server"
	"github.com/suis3/catalog/internal/catalog"
	"github.com/suis3/catalog/internal/notify"
	"github.com/suis3/catalog/internal/store"
)

func main() {
	ctx := context.Background()

	// Bootstrap common components (config, logger, redis, db)
	components, err := bootstrap.Setup(ctx, "catalogd")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap catalogd: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	// Notification channel: redis when available, in-process otherwise
	var notifier notify.Notifier
	if components.Redis != nil {
		notifier = notify.NewRedisNotifier(components.Redis, components.Config.Catalog.ChannelPrefix, components.Logger)
	} else {
		components.Logger.Warn("redis disabled, catalog events stay in-process")
		notifier = notify.NewMemoryNotifier()
	}

	// Snapshot store: postgres when configured
	var snapStore store.Store = store.NewNoopStore()
	if components.DB != nil {
		snapStore, err = store.NewPostgresStore(ctx, components.DB, components.Logger)
		if err != nil {
			components.Logger.Error("failed to initialize snapshot store", "error", err)
			os.Exit(1)
		}
	}

	// Build the catalog and restore the last snapshot, if any
	cat := catalog.New(notifier, components.Logger)
	if snap, found, err := snapStore.Load(ctx); err != nil {
		components.Logger.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	} else if found {
		cat.Restore(snap)
		components.Logger.Info("catalog restored from snapshot", "buckets", len(snap.Buckets), "epoch", snap.Epoch)
	}

	// Initialize Echo server
	e := setupEcho()
	setupMiddleware(e)
	setupHealthCheck(e, components)

	routes.Register(e, cat, snapStore, components.Logger)

	startServer(e, components)
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	return e
}

// setupMiddleware configures all middleware for the Echo server
func setupMiddleware(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, components *bootstrap.Components) {
	e.GET("/health", func(c echo.Context) error {
		if err := components.Health(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(200, map[string]string{
			"status":  "ok",
			"service": "catalogd",
		})
	})
}

// startServer runs the Echo server with graceful shutdown
func startServer(e *echo.Echo, components *bootstrap.Components) {
	srv := server.New("catalogd", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
