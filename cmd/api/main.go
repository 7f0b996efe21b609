package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/query-classifier/api/internal/config"
	"github.com/octobees/query-classifier/api/internal/handler"
	"github.com/octobees/query-classifier/api/internal/llm"
	"github.com/octobees/query-classifier/api/internal/logger"
	"github.com/octobees/query-classifier/api/internal/metrics"
	middlewarepkg "github.com/octobees/query-classifier/api/internal/middleware"
	"github.com/octobees/query-classifier/api/internal/router"
	"github.com/octobees/query-classifier/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	model := llm.NewGroqClient(nil, cfg.Model)
	queryService := service.NewQueryService(model, zl.Named("query"), metrics.New(nil))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(zl.Named("http")))
	e.Use(echoMiddleware.Recover())

	router.Register(e, router.Handlers{
		Query: handler.NewQueryHandler(queryService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	zl.Info("server listening", zap.String("port", cfg.Port), zap.String("model", model.Model()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
