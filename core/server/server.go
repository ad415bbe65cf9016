// Package server boots the API: configuration, logging, datastores, the
// background worker, and the echo router with every module mounted under
// /api/v1.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-events-api/core/cache"
	"campus-events-api/core/config"
	"campus-events-api/core/database"
	"campus-events-api/core/logger"
	"campus-events-api/core/middleware"
	"campus-events-api/core/queue"
	"campus-events-api/core/storage"
	"campus-events-api/modules/auth"
	"campus-events-api/modules/event"
	"campus-events-api/modules/notification"
	"campus-events-api/modules/registration"
	"campus-events-api/modules/report"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 15 * time.Second

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting campus-events-api", "env", cfg.Server.Env)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	// The uploader is optional: without a bucket the image endpoint reports
	// the storage error instead of blocking startup.
	var uploader storage.Uploader
	if up, upErr := storage.NewS3Uploader(cfg.AWS); upErr != nil {
		logger.Warn("S3 uploader unavailable, image uploads disabled", "error", upErr)
	} else {
		uploader = up
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(redisCache)
	api := e.Group("/api/v1")

	auth.Init(api, &db, redisCache, mw)
	event.Init(api, &db, mw, uploader)
	notificationSvc := notification.Init(api, &db, mw)
	registrationSvc := registration.Init(api, &db, mw, queueClient, notificationSvc)
	report.Init(api, &db, mw)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Background worker: processes counter recounts enqueued after reviews.
	worker := queue.NewServer(cfg.Redis)
	muxHandler := asynq.NewServeMux()
	muxHandler.HandleFunc(queue.TypeRegistrationRecount, registrationSvc.HandleRecountTask)
	go func() {
		if err := worker.Run(muxHandler); err != nil {
			logger.Error("Server:Worker:Error:", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
