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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fleetcalc/adapters/api"
	"fleetcalc/app"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/config"
	"fleetcalc/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Must(cfg.Log)
	defer logger.Sync()

	service := app.NewAnalysisService(analyzer.New(nil), nil, cfg.Analysis.Workers, logger)
	srv := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     api.NewServer(service, logger),
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		logger.Info("starting API server", zap.String("addr", srv.Addr), zap.Int("workers", cfg.Analysis.Workers))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
