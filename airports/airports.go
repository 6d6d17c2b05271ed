// Package airports contains the static IATA reference table used by the
// travel log. The table holds coordinates for the airports that appear in
// the logged travel data; unknown codes resolve to nothing, and distance
// calculations over them degrade to zero.
package airports

import "github.com/gilby125/travellog/pkg/geo"

// Lookup returns the coordinates for a known IATA airport code.
// The second return value is false when the code is not in the table.
func Lookup(code string) (geo.Coordinates, bool) {
	switch code {
	case "AMS":
		return geo.Coordinates{Lat: 52.3081, Lon: 4.7661}, true
	case "ATL":
		return geo.Coordinates{Lat: 33.6407, Lon: -84.4277}, true
	case "CLT":
		return geo.Coordinates{Lat: 35.2140, Lon: -80.9431}, true
	case "DAL":
		return geo.Coordinates{Lat: 32.8471, Lon: -96.8517}, true
	case "DCA":
		return geo.Coordinates{Lat: 38.8512, Lon: -77.0377}, true
	case "DEN":
		return geo.Coordinates{Lat: 39.8561, Lon: -104.6737}, true
	case "DFW":
		return geo.Coordinates{Lat: 32.8998, Lon: -97.0403}, true
	case "EWR":
		return geo.Coordinates{Lat: 40.6895, Lon: -74.1745}, true
	case "HEL":
		return geo.Coordinates{Lat: 60.3172, Lon: 24.9633}, true
	case "JFK":
		return geo.Coordinates{Lat: 40.6413, Lon: -73.7781}, true
	case "LAX":
		return geo.Coordinates{Lat: 33.9416, Lon: -118.4085}, true
	case "LGA":
		return geo.Coordinates{Lat: 40.7769, Lon: -73.8740}, true
	case "LHR":
		return geo.Coordinates{Lat: 51.4700, Lon: -0.4543}, true
	case "MIA":
		return geo.Coordinates{Lat: 25.7959, Lon: -80.2870}, true
	case "ORD":
		return geo.Coordinates{Lat: 41.9742, Lon: -87.9073}, true
	case "PHX":
		return geo.Coordinates{Lat: 33.4343, Lon: -112.0116}, true
	case "SEA":
		return geo.Coordinates{Lat: 47.4502, Lon: -122.3088}, true
	case "SFO":
		return geo.Coordinates{Lat: 37.6213, Lon: -122.3790}, true
	case "STL":
		return geo.Coordinates{Lat: 38.7487, Lon: -90.3700}, true
	}
	return geo.Coordinates{}, false
}

// Distance returns the great-circle distance in whole miles between two
// airports. Unknown codes yield 0, which callers must treat as "not
// computed" rather than a real zero-mile route.
func Distance(origin, destination string) int {
	from, ok := Lookup(origin)
	if !ok {
		return 0
	}
	to, ok := Lookup(destination)
	if !ok {
		return 0
	}
	return int(geo.DistanceBetween(from, to))
}
