package travel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightTable_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")

	flight := Flight{
		Date:        date("2025-03-01"),
		Airline:     "Delta",
		Origin:      "JFK",
		Destination: "LAX",
		Miles:       2469,
		OriginLat:   40.6413,
		OriginLon:   -73.7781,
		DestLat:     33.9416,
		DestLon:     -118.4085,
	}

	require.NoError(t, AppendFlight(path, flight))

	flights, err := LoadFlights(path)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, flight, flights[0])
}

func TestLoadFlights_MissingFile(t *testing.T) {
	flights, err := LoadFlights(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestHotelTable_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.csv")

	hotel := Hotel{
		Date:    date("2025-04-12"),
		Name:    "Le Méridien St. Louis Clayton",
		City:    "Clayton",
		Address: "7730, Bonhomme Avenue, Clayton, Missouri",
		Nights:  2,
		Lat:     38.6486,
		Lon:     -90.337,
	}

	require.NoError(t, AppendHotel(path, hotel))

	hotels, err := LoadHotels(path)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, hotel, hotels[0])
}

func TestHotelRow_ZeroDate(t *testing.T) {
	hotel := Hotel{Name: "No Date Inn", City: "Unknown", Nights: 1}
	row := hotel.Row()
	assert.Equal(t, "", row[0])

	parsed, err := HotelFromRow(row)
	require.NoError(t, err)
	assert.True(t, parsed.Date.IsZero())
	assert.Equal(t, "No Date Inn", parsed.Name)
}

func TestFlightFromRow_Malformed(t *testing.T) {
	t.Run("short row", func(t *testing.T) {
		_, err := FlightFromRow([]string{"2025-03-01", "Delta"})
		assert.Error(t, err)
	})

	t.Run("bad miles", func(t *testing.T) {
		_, err := FlightFromRow([]string{"2025-03-01", "Delta", "JFK", "LAX", "many", "0", "0", "0", "0"})
		assert.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := FlightFromRow([]string{"March 1st", "Delta", "JFK", "LAX", "0", "0", "0", "0", "0"})
		assert.Error(t, err)
	})
}

func TestSaveFlights_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")

	require.NoError(t, AppendFlight(path, Flight{Date: date("2025-01-01"), Airline: "Delta", Origin: "JFK", Destination: "LAX", Miles: 2469}))
	require.NoError(t, AppendFlight(path, Flight{Date: date("2025-02-01"), Airline: "United", Origin: "ORD", Destination: "DEN", Miles: 888}))

	// Grid save: the edited set replaces the table wholesale.
	edited := []Flight{{Date: date("2025-02-01"), Airline: "United", Origin: "ORD", Destination: "DEN", Miles: 900}}
	require.NoError(t, SaveFlights(path, edited))

	flights, err := LoadFlights(path)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, 900, flights[0].Miles)
}
