package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	envErr := godotenv.Load(".env")

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(config)
	if envErr != nil {
		logger.Debug("No .env file loaded", "error", envErr)
	}

	uowFactory, closeStore, err := cmd.OpenStore(config)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", config.StoreDriver, err)
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			logger.Error("Failed to close store", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, uowFactory, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, config.HTTPPort, logger)
}

func newLogger(config cmd.Config) *slog.Logger {
	level, _ := config.SlogLevel()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("service", "pizzeria")
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := app.CreateRouter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server starting", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
