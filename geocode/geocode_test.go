package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:   baseURL,
		UserAgent: "travellog-test",
		Timeout:   5 * time.Second,
	})
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Le Meridien Clayton", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "travellog-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"lat": "38.6486",
			"lon": "-90.3370",
			"display_name": "Le Méridien St. Louis Clayton, 7730, Bonhomme Avenue, Clayton, Missouri, United States",
			"address": {
				"hotel": "Le Méridien St. Louis Clayton",
				"road": "Bonhomme Avenue",
				"city": "Clayton",
				"county": "St. Louis County",
				"state": "Missouri"
			}
		}]`))
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL).Resolve(context.Background(), "Le Meridien Clayton")
	require.NoError(t, err)

	assert.InDelta(t, 38.6486, loc.Lat, 0.0001)
	assert.InDelta(t, -90.3370, loc.Lon, 0.0001)
	assert.Equal(t, "Le Méridien St. Louis Clayton", loc.Name())
	assert.Equal(t, "Clayton", loc.City())
	assert.Contains(t, loc.DisplayName, "Bonhomme Avenue")
}

func TestResolve_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL).Resolve(context.Background(), "nowhere at all")
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_EmptyQuery(t *testing.T) {
	loc, err := newTestClient("http://localhost:1").Resolve(context.Background(), "   ")
	assert.Nil(t, loc)
	assert.Error(t, err)
}

func TestResolve_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL).Resolve(context.Background(), "somewhere")
	assert.Nil(t, loc)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestResolve_MissingAddressDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "1.5", "lon": "2.5", "display_name": "Some Hotel, Some Street, Somewhere"}]`))
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL).Resolve(context.Background(), "some hotel")
	require.NoError(t, err)
	assert.Equal(t, "Some Hotel", loc.Name())
	assert.Equal(t, "", loc.City())
}

func TestLocationName_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{
			name: "hotel part wins",
			loc: Location{
				DisplayName: "Full Address, City, Country",
				Address:     map[string]string{"hotel": "The Grand", "tourism": "Museum"},
			},
			expected: "The Grand",
		},
		{
			name: "tourism when no hotel",
			loc: Location{
				DisplayName: "Full Address, City, Country",
				Address:     map[string]string{"tourism": "Museum Hostel"},
			},
			expected: "Museum Hostel",
		},
		{
			name: "first display name segment otherwise",
			loc: Location{
				DisplayName: "Corner Inn, Main Street, Springfield",
				Address:     map[string]string{"road": "Main Street"},
			},
			expected: "Corner Inn",
		},
		{
			name: "display name without commas",
			loc: Location{
				DisplayName: "Springfield",
				Address:     map[string]string{},
			},
			expected: "Springfield",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.Name())
		})
	}
}

func TestLocationCity_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		address  map[string]string
		expected string
	}{
		{"city wins", map[string]string{"city": "Dallas", "town": "Addison"}, "Dallas"},
		{"town when no city", map[string]string{"town": "Addison"}, "Addison"},
		{"village when no town", map[string]string{"village": "Roden"}, "Roden"},
		{"county last", map[string]string{"county": "Dallas County"}, "Dallas County"},
		{"empty when nothing matches", map[string]string{"state": "Texas"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Location{Address: tt.address}
			assert.Equal(t, tt.expected, loc.City())
		})
	}
}

func TestResolve_Pacing(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "1", "lon": "2", "display_name": "X"}]`))
	}))
	defer srv.Close()

	client := New(Config{
		BaseURL:     srv.URL,
		UserAgent:   "travellog-test",
		Timeout:     5 * time.Second,
		MinInterval: 50 * time.Millisecond,
	})

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.Resolve(context.Background(), "query")
		require.NoError(t, err)
	}
	elapsed := time.Since(start)

	assert.Equal(t, 3, calls)
	// First call is immediate, the next two wait out the interval.
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
}
