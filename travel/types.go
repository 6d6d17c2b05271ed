// Package travel defines the canonical flight and hotel records the travel
// log persists, and the normalizers that produce them from manual form
// input or exported activity feeds.
package travel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gilby125/travellog/store"
)

// DateLayout is the ISO-like date format used in the persisted tables.
const DateLayout = "2006-01-02"

// FlightColumns is the header of the flight table file.
var FlightColumns = []string{"Date", "Airline", "Origin", "Destination", "Miles", "Origin_Lat", "Origin_Lon", "Dest_Lat", "Dest_Lon"}

// HotelColumns is the header of the hotel table file.
var HotelColumns = []string{"Date", "Name", "City", "Address", "Nights", "Lat", "Lon"}

// Flight is one canonical flight record. Miles == 0 means "not computed",
// never a real zero-distance route.
type Flight struct {
	Date        time.Time
	Airline     string
	Origin      string
	Destination string
	Miles       int
	OriginLat   float64
	OriginLon   float64
	DestLat     float64
	DestLon     float64
}

// Hotel is one canonical hotel stay record. Lat/Lon are 0.0 when the
// location was never resolved.
type Hotel struct {
	Date    time.Time
	Name    string
	City    string
	Address string
	Nights  int
	Lat     float64
	Lon     float64
}

// ValidationError describes a user-facing rejection on the manual entry path.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Row renders the flight as a table row in FlightColumns order.
func (f Flight) Row() []string {
	return []string{
		f.Date.Format(DateLayout),
		f.Airline,
		f.Origin,
		f.Destination,
		strconv.Itoa(f.Miles),
		formatCoord(f.OriginLat),
		formatCoord(f.OriginLon),
		formatCoord(f.DestLat),
		formatCoord(f.DestLon),
	}
}

// Row renders the hotel as a table row in HotelColumns order.
func (h Hotel) Row() []string {
	date := ""
	if !h.Date.IsZero() {
		date = h.Date.Format(DateLayout)
	}
	return []string{
		date,
		h.Name,
		h.City,
		h.Address,
		strconv.Itoa(h.Nights),
		formatCoord(h.Lat),
		formatCoord(h.Lon),
	}
}

// FlightFromRow parses a flight table row back into a record.
func FlightFromRow(row []string) (Flight, error) {
	if len(row) < len(FlightColumns) {
		return Flight{}, fmt.Errorf("travel: flight row has %d fields, want %d", len(row), len(FlightColumns))
	}
	date, err := time.Parse(DateLayout, row[0])
	if err != nil {
		return Flight{}, fmt.Errorf("travel: parsing flight date %q: %w", row[0], err)
	}
	miles, err := strconv.Atoi(row[4])
	if err != nil {
		return Flight{}, fmt.Errorf("travel: parsing miles %q: %w", row[4], err)
	}
	coords := make([]float64, 4)
	for i, raw := range row[5:9] {
		coords[i], err = parseCoord(raw)
		if err != nil {
			return Flight{}, fmt.Errorf("travel: parsing flight coordinate %q: %w", raw, err)
		}
	}
	return Flight{
		Date:        date,
		Airline:     row[1],
		Origin:      row[2],
		Destination: row[3],
		Miles:       miles,
		OriginLat:   coords[0],
		OriginLon:   coords[1],
		DestLat:     coords[2],
		DestLon:     coords[3],
	}, nil
}

// HotelFromRow parses a hotel table row back into a record. An empty date
// field parses to the zero time; imported stays can lack one.
func HotelFromRow(row []string) (Hotel, error) {
	if len(row) < len(HotelColumns) {
		return Hotel{}, fmt.Errorf("travel: hotel row has %d fields, want %d", len(row), len(HotelColumns))
	}
	var date time.Time
	if row[0] != "" {
		var err error
		date, err = time.Parse(DateLayout, row[0])
		if err != nil {
			return Hotel{}, fmt.Errorf("travel: parsing hotel date %q: %w", row[0], err)
		}
	}
	nights, err := strconv.Atoi(row[4])
	if err != nil {
		return Hotel{}, fmt.Errorf("travel: parsing nights %q: %w", row[4], err)
	}
	lat, err := parseCoord(row[5])
	if err != nil {
		return Hotel{}, fmt.Errorf("travel: parsing hotel latitude %q: %w", row[5], err)
	}
	lon, err := parseCoord(row[6])
	if err != nil {
		return Hotel{}, fmt.Errorf("travel: parsing hotel longitude %q: %w", row[6], err)
	}
	return Hotel{
		Date:    date,
		Name:    row[1],
		City:    row[2],
		Address: row[3],
		Nights:  nights,
		Lat:     lat,
		Lon:     lon,
	}, nil
}

// LoadFlights reads the flight table at path. A missing file yields an
// empty slice.
func LoadFlights(path string) ([]Flight, error) {
	table, err := store.Load(path, FlightColumns)
	if err != nil {
		return nil, err
	}
	flights := make([]Flight, 0, len(table.Rows))
	for i, row := range table.Rows {
		flight, err := FlightFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

// SaveFlights rewrites the whole flight table at path.
func SaveFlights(path string, flights []Flight) error {
	table := store.New(FlightColumns)
	for _, f := range flights {
		table.Append(f.Row())
	}
	return table.Save(path)
}

// AppendFlight appends one flight after the existing rows.
func AppendFlight(path string, f Flight) error {
	return store.Append(path, FlightColumns, f.Row())
}

// LoadHotels reads the hotel table at path. A missing file yields an
// empty slice.
func LoadHotels(path string) ([]Hotel, error) {
	table, err := store.Load(path, HotelColumns)
	if err != nil {
		return nil, err
	}
	hotels := make([]Hotel, 0, len(table.Rows))
	for i, row := range table.Rows {
		hotel, err := HotelFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

// SaveHotels rewrites the whole hotel table at path.
func SaveHotels(path string, hotels []Hotel) error {
	table := store.New(HotelColumns)
	for _, h := range hotels {
		table.Append(h.Row())
	}
	return table.Save(path)
}

// AppendHotel appends one hotel stay after the existing rows.
func AppendHotel(path string, h Hotel) error {
	return store.Append(path, HotelColumns, h.Row())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseCoord(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
