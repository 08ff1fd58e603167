package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	app, err := server.Build(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to build server")
	}
	defer app.Close()

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Server.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.WithError(err).Error("Server error")
			return
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received signal")
	}

	log.Info("Shutting down server...")
	if err := app.Server.Shutdown(context.Background()); err != nil {
		log.WithError(err).Error("Server shutdown error")
		return
	}
	log.Info("Server stopped")
}
