// Package analytics derives presentation-ready aggregates from the
// canonical record sets: route frequency tiers, date-window filtering,
// and the dashboard scoreboard reductions. Everything here is a pure
// function over in-memory records; nothing is persisted.
package analytics

import (
	"time"

	"github.com/gilby125/travellog/travel"
)

// Tier classifies a route's rendering intensity by visit count.
type Tier string

const (
	TierHigh   Tier = "high"   // 5+ flights on the route
	TierMedium Tier = "medium" // 3-4 flights
	TierLow    Tier = "low"    // 1-2 flights
)

// RouteKey returns the unordered route identifier for an origin and
// destination pair: both directions of the same route share a key.
func RouteKey(origin, destination string) string {
	if destination < origin {
		origin, destination = destination, origin
	}
	return origin + "-" + destination
}

// RouteCounts counts flights per unordered route.
func RouteCounts(flights []travel.Flight) map[string]int {
	counts := make(map[string]int, len(flights))
	for _, f := range flights {
		counts[RouteKey(f.Origin, f.Destination)]++
	}
	return counts
}

// Classify maps a route's flight count to its tier.
func Classify(count int) Tier {
	switch {
	case count >= 5:
		return TierHigh
	case count >= 3:
		return TierMedium
	default:
		return TierLow
	}
}

// FilterFlights selects flights whose date falls within the inclusive
// [start, end] window.
func FilterFlights(flights []travel.Flight, start, end time.Time) []travel.Flight {
	out := make([]travel.Flight, 0, len(flights))
	for _, f := range flights {
		if inRange(f.Date, start, end) {
			out = append(out, f)
		}
	}
	return out
}

// FilterHotels selects hotel stays whose check-in date falls within the
// inclusive [start, end] window.
func FilterHotels(hotels []travel.Hotel, start, end time.Time) []travel.Hotel {
	out := make([]travel.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if inRange(h.Date, start, end) {
			out = append(out, h)
		}
	}
	return out
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// Summary is the dashboard scoreboard.
type Summary struct {
	TotalMiles         int `json:"total_miles"`
	Flights            int `json:"flights"`
	HotelNights        int `json:"hotel_nights"`
	UniqueDestinations int `json:"unique_destinations"`
}

// Summarize reduces the filtered record sets into the scoreboard totals.
// Empty inputs yield a zero-valued summary.
func Summarize(flights []travel.Flight, hotels []travel.Hotel) Summary {
	summary := Summary{Flights: len(flights)}
	destinations := make(map[string]struct{})
	for _, f := range flights {
		summary.TotalMiles += f.Miles
		destinations[f.Destination] = struct{}{}
	}
	summary.UniqueDestinations = len(destinations)
	for _, h := range hotels {
		summary.HotelNights += h.Nights
	}
	return summary
}

// MonthlyMiles buckets flight miles by calendar month ("2006-01" keys).
func MonthlyMiles(flights []travel.Flight) map[string]int {
	monthly := make(map[string]int)
	for _, f := range flights {
		monthly[f.Date.Format("2006-01")] += f.Miles
	}
	return monthly
}

// NightsByHotel totals stay nights per hotel name.
func NightsByHotel(hotels []travel.Hotel) map[string]int {
	nights := make(map[string]int)
	for _, h := range hotels {
		nights[h.Name] += h.Nights
	}
	return nights
}

// VisitsByDestination counts flights per destination code.
func VisitsByDestination(flights []travel.Flight) map[string]int {
	visits := make(map[string]int)
	for _, f := range flights {
		visits[f.Destination]++
	}
	return visits
}
