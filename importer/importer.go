// Package importer runs the batch side of the pipeline: it reads exported
// activity feeds, normalizes them into canonical records, and rewrites the
// flat-file tables. Per-entry anomalies are absorbed (excluded or
// default-filled) so a stage always completes and reports a final count;
// only a missing or unreadable input file skips a stage.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gilby125/travellog/geocode"
	"github.com/gilby125/travellog/pkg/logger"
	"github.com/gilby125/travellog/travel"
)

// Resolver is the geocoding dependency of the hotel stage.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*geocode.Location, error)
}

// Flights imports a flight activity export: filter, normalize, dedupe,
// and rewrite the flight table. Returns the records written.
func Flights(inputPath, outputPath, airline string) ([]travel.Flight, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("importer: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	flights, err := travel.FlightsFromActivity(f, airline)
	if err != nil {
		return nil, err
	}
	flights = travel.DedupeFlights(flights)

	if err := travel.SaveFlights(outputPath, flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// Hotels imports a stay activity export: extract stays, geocode each name
// through the resolver, and rewrite the hotel table. Geocoding failures
// degrade the record (City "Unknown", address = name, zero coordinates)
// with a warning; the record is still written. The resolver is expected
// to pace its own requests.
func Hotels(ctx context.Context, inputPath, outputPath string, resolver Resolver, log *logger.Logger) ([]travel.Hotel, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("importer: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	stays, err := travel.StaysFromActivity(f)
	if err != nil {
		return nil, err
	}

	hotels := make([]travel.Hotel, 0, len(stays))
	for _, stay := range stays {
		hotel := travel.Hotel{
			Name:    stay.Name,
			City:    "Unknown",
			Address: stay.Name,
			Nights:  stay.Nights,
		}
		if date, ok := travel.ParseDate(stay.Date); ok {
			hotel.Date = date
		}

		log.Info("geocoding stay", "name", stay.Name)
		loc, err := resolver.Resolve(ctx, stay.Name)
		switch {
		case err == nil:
			hotel.Lat = loc.Lat
			hotel.Lon = loc.Lon
			hotel.Address = loc.DisplayName
			if city := loc.City(); city != "" {
				hotel.City = city
			}
		case errors.Is(err, geocode.ErrNotFound):
			log.Warn("no geocoding match for stay", "name", stay.Name)
		default:
			log.Warn("could not geocode stay", "name", stay.Name, "error", err)
		}

		hotels = append(hotels, hotel)
	}

	if err := travel.SaveHotels(outputPath, hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}
