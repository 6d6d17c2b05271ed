package travel

import (
	"strings"
	"time"

	"github.com/gilby125/travellog/airports"
)

// FlightForm carries the fields of a manual flight entry. Miles == 0
// requests auto-calculation from the airport reference table.
type FlightForm struct {
	Date        time.Time
	Airline     string
	Origin      string
	Destination string
	Miles       int
}

// NewFlight normalizes a manual flight entry into a canonical record.
// Both airport codes must resolve in the reference table and must differ;
// otherwise the entry is rejected with a ValidationError and nothing is
// persisted.
func NewFlight(form FlightForm) (Flight, error) {
	origin := strings.ToUpper(strings.TrimSpace(form.Origin))
	destination := strings.ToUpper(strings.TrimSpace(form.Destination))

	if form.Date.IsZero() {
		return Flight{}, &ValidationError{Field: "Date", Message: "is required"}
	}
	if form.Miles < 0 {
		return Flight{}, &ValidationError{Field: "Miles", Message: "cannot be negative"}
	}

	originCoords, ok := airports.Lookup(origin)
	if !ok {
		return Flight{}, &ValidationError{Field: "Origin", Message: "unknown airport code " + origin}
	}
	destCoords, ok := airports.Lookup(destination)
	if !ok {
		return Flight{}, &ValidationError{Field: "Destination", Message: "unknown airport code " + destination}
	}
	if origin == destination {
		return Flight{}, &ValidationError{Field: "Destination", Message: "must differ from origin"}
	}

	miles := form.Miles
	if miles == 0 {
		miles = airports.Distance(origin, destination)
	}

	return Flight{
		Date:        form.Date,
		Airline:     form.Airline,
		Origin:      origin,
		Destination: destination,
		Miles:       miles,
		OriginLat:   originCoords.Lat,
		OriginLon:   originCoords.Lon,
		DestLat:     destCoords.Lat,
		DestLon:     destCoords.Lon,
	}, nil
}

// HotelForm carries the fields of a manual hotel entry. The coordinates
// come from the search step's resolved location, passed back explicitly
// by the client; they stay 0.0 when no location was resolved.
type HotelForm struct {
	Date    time.Time
	Name    string
	City    string
	Address string
	Nights  int
	Lat     float64
	Lon     float64
}

// NewHotel normalizes a manual hotel entry into a canonical record.
func NewHotel(form HotelForm) (Hotel, error) {
	if form.Date.IsZero() {
		return Hotel{}, &ValidationError{Field: "Date", Message: "is required"}
	}
	if form.Nights < 1 {
		return Hotel{}, &ValidationError{Field: "Nights", Message: "must be at least 1"}
	}

	return Hotel{
		Date:    form.Date,
		Name:    strings.TrimSpace(form.Name),
		City:    strings.TrimSpace(form.City),
		Address: strings.TrimSpace(form.Address),
		Nights:  form.Nights,
		Lat:     form.Lat,
		Lon:     form.Lon,
	}, nil
}
