package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gilby125/travellog/api"
	"github.com/gilby125/travellog/config"
	"github.com/gilby125/travellog/geocode"
	"github.com/gilby125/travellog/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Level: "info", Format: "text"})
		logger.Fatal(err, "Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	logger.Info("Configuration loaded",
		"flights_file", cfg.StoreConfig.FlightsPath,
		"hotels_file", cfg.StoreConfig.HotelsPath)

	// Initialize the geocoding client
	geocoder := geocode.New(geocode.Config{
		BaseURL:     cfg.GeocoderConfig.BaseURL,
		UserAgent:   cfg.GeocoderConfig.UserAgent,
		Timeout:     cfg.GeocoderConfig.Timeout,
		MinInterval: cfg.GeocoderConfig.MinInterval,
		MaxRetries:  cfg.GeocoderConfig.MaxRetries,
	})

	// Initialize API router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, cfg, geocoder)

	// Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err, "Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal(err, "Server forced to shutdown")
	}

	logger.Info("Server exited properly")
}
