// Command importer converts exported activity feeds into the travel log's
// flat-file tables. Each stage (flights, hotels) runs independently: a
// missing or unreadable input is reported and that stage skipped without
// failing the other.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gilby125/travellog/analytics"
	"github.com/gilby125/travellog/config"
	"github.com/gilby125/travellog/geocode"
	"github.com/gilby125/travellog/importer"
	"github.com/gilby125/travellog/pkg/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Level: "info", Format: "text"})
		logger.Fatal(err, "Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	log := logger.WithField("component", "importer")

	ctx := context.Background()
	printer := message.NewPrinter(language.English)

	// --- Flights stage ---
	flights, err := importer.Flights(cfg.ImportConfig.FlightActivityPath, cfg.StoreConfig.FlightsPath, cfg.ImportConfig.Airline)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn("flight activity export not found, skipping stage", "path", cfg.ImportConfig.FlightActivityPath)
	case err != nil:
		log.Error(err, "flight import failed, skipping stage", "path", cfg.ImportConfig.FlightActivityPath)
	default:
		totalMiles := analytics.Summarize(flights, nil).TotalMiles
		printer.Fprintf(os.Stdout, "Saved %d flights (%d miles) to %s\n",
			len(flights), totalMiles, cfg.StoreConfig.FlightsPath)
	}

	// --- Hotels stage ---
	// The geocoding client paces its own requests per the provider policy.
	geocoder := geocode.New(geocode.Config{
		BaseURL:     cfg.GeocoderConfig.BaseURL,
		UserAgent:   cfg.GeocoderConfig.UserAgent,
		Timeout:     cfg.GeocoderConfig.Timeout,
		MinInterval: cfg.GeocoderConfig.MinInterval,
		MaxRetries:  cfg.GeocoderConfig.MaxRetries,
	})

	hotels, err := importer.Hotels(ctx, cfg.ImportConfig.StayActivityPath, cfg.StoreConfig.HotelsPath, geocoder, log)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn("stay activity export not found, skipping stage", "path", cfg.ImportConfig.StayActivityPath)
	case err != nil:
		log.Error(err, "hotel import failed, skipping stage", "path", cfg.ImportConfig.StayActivityPath)
	default:
		fmt.Fprintf(os.Stdout, "Saved %d hotel stays to %s\n", len(hotels), cfg.StoreConfig.HotelsPath)
	}
}
