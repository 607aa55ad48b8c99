package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-ordering-assistant/config"
	_ "food-ordering-assistant/docs" // Swagger docs
	"food-ordering-assistant/internal/httpserver"
	"food-ordering-assistant/pkg/intentmodel"
	"food-ordering-assistant/pkg/log"
	"food-ordering-assistant/pkg/sqlitedb"
)

// @title       Food Ordering Assistant API
// @description Conversational ordering assistant with intent classification, session dialogue state and auth-gated routing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Food Ordering Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Storage
	db, err := sqlitedb.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Optional model classifier
	var model intentmodel.Provider
	if cfg.ModelClassifier.Enabled {
		timeout, tErr := time.ParseDuration(cfg.ModelClassifier.Timeout)
		if tErr != nil {
			logger.Warnf(ctx, "Invalid model classifier timeout %q, using default: %v", cfg.ModelClassifier.Timeout, tErr)
			timeout = 0
		}
		model = intentmodel.NewClient(cfg.ModelClassifier.URL, timeout)
		logger.Infof(ctx, "Model classifier enabled at %s", cfg.ModelClassifier.URL)
	} else {
		logger.Info(ctx, "Model classifier disabled, running on pattern classification")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		JWTSecret:       cfg.Auth.JWTSecret,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		Model:           model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
