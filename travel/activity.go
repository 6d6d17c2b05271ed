package travel

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gilby125/travellog/airports"
)

// activityExport mirrors the flight activity export: an activityCards
// array where each card splits into a summary and optional flight details.
type activityExport struct {
	ActivityCards []activityCard `json:"activityCards"`
}

type activityCard struct {
	Summary activitySummary `json:"summary"`
	Details activityDetails `json:"details"`
}

type activitySummary struct {
	ActivityType           string `json:"activityType"`
	TransactionDescription string `json:"transactionDescription"`
	ActivityDate           string `json:"activityDate"`
	Origin                 string `json:"origin"`
	Destination            string `json:"destination"`
}

type activityDetails struct {
	FlightInfo flightInfo `json:"flightInfo"`
}

type flightInfo struct {
	TravelDate  string `json:"travelDate"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// flightActivityTypes are the card classifications that represent flown
// segments; everything else (purchases, adjustments) is skipped.
var flightActivityTypes = map[string]bool{
	"Airline":        true,
	"Award Issuance": true,
}

// FlightsFromActivity parses a flight activity export and returns the
// canonical flight records it contains, stamped with the given airline
// label. Refund entries and cards missing a date or either airport code,
// or with origin == destination, are silently excluded; this is the batch
// path's exclusion policy, not an error. Unknown airport codes zero-fill
// miles and coordinates.
func FlightsFromActivity(r io.Reader, airline string) ([]Flight, error) {
	var export activityExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("travel: decoding flight activity export: %w", err)
	}

	var flights []Flight
	for _, card := range export.ActivityCards {
		if !flightActivityTypes[card.Summary.ActivityType] {
			continue
		}
		if strings.Contains(strings.ToUpper(card.Summary.TransactionDescription), "REFUND") {
			continue
		}

		dateStr := firstNonEmpty(card.Details.FlightInfo.TravelDate, card.Summary.ActivityDate)
		origin := strings.ToUpper(firstNonEmpty(card.Details.FlightInfo.Origin, card.Summary.Origin))
		destination := strings.ToUpper(firstNonEmpty(card.Details.FlightInfo.Destination, card.Summary.Destination))

		date, ok := ParseDate(dateStr)
		if !ok || origin == "" || destination == "" || origin == destination {
			continue
		}

		flight := Flight{
			Date:        date,
			Airline:     airline,
			Origin:      origin,
			Destination: destination,
		}
		if originCoords, ok := airports.Lookup(origin); ok {
			if destCoords, ok := airports.Lookup(destination); ok {
				flight.Miles = airports.Distance(origin, destination)
				flight.OriginLat = originCoords.Lat
				flight.OriginLon = originCoords.Lon
				flight.DestLat = destCoords.Lat
				flight.DestLon = destCoords.Lon
			}
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

// DedupeFlights removes exact full-row duplicates, keeping first-seen
// order. Two genuinely distinct flights with identical date, airline,
// route, and miles collapse into one; known limitation of the feed.
func DedupeFlights(flights []Flight) []Flight {
	seen := make(map[string]struct{}, len(flights))
	out := make([]Flight, 0, len(flights))
	for _, f := range flights {
		key := strings.Join(f.Row(), "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// firstNonEmpty returns the first non-empty value, in priority order.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// activityDateLayouts are the date shapes seen in exported feeds.
var activityDateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"January 2, 2006",
}

// ParseDate parses a date in any of the shapes seen in exported feeds.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range activityDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
