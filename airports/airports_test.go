package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		coords, ok := Lookup("JFK")
		assert.True(t, ok)
		assert.InDelta(t, 40.6413, coords.Lat, 0.0001)
		assert.InDelta(t, -73.7781, coords.Lon, 0.0001)
	})

	t.Run("unknown code", func(t *testing.T) {
		coords, ok := Lookup("XXX")
		assert.False(t, ok)
		assert.True(t, coords.IsZero())
	})

	t.Run("lowercase is not normalized here", func(t *testing.T) {
		// Callers uppercase codes before lookup.
		_, ok := Lookup("jfk")
		assert.False(t, ok)
	})
}

func TestDistance(t *testing.T) {
	t.Run("JFK to LAX", func(t *testing.T) {
		miles := Distance("JFK", "LAX")
		assert.InDelta(t, 2475, miles, 25, "JFK-LAX should be ~2,475 miles")
	})

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t, Distance("JFK", "LAX"), Distance("LAX", "JFK"))
		assert.Equal(t, Distance("DFW", "LHR"), Distance("LHR", "DFW"))
	})

	t.Run("same airport", func(t *testing.T) {
		assert.Equal(t, 0, Distance("ORD", "ORD"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		assert.Equal(t, 0, Distance("XXX", "LAX"))
	})

	t.Run("unknown destination", func(t *testing.T) {
		assert.Equal(t, 0, Distance("JFK", "XXX"))
	})

	t.Run("both unknown", func(t *testing.T) {
		assert.Equal(t, 0, Distance("AAA", "BBB"))
	})
}
