package travel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stayExportJSON(nodes string) string {
	return `{"data": {"customer": {"loyaltyInformation": {"accountActivity": {"edges": [` + nodes + `]}}}}}`
}

func TestStaysFromActivity(t *testing.T) {
	input := stayExportJSON(`
		{"node": {
			"type": {"code": "STAY"},
			"startDate": "2025-04-12",
			"endDate": "2025-04-15",
			"description": "fallback description",
			"properties": [{"basicInformation": {"name": "Le Méridien St. Louis Clayton"}}]
		}},
		{"node": {
			"type": {"code": "BONUS"},
			"startDate": "2025-04-20",
			"endDate": "2025-04-21",
			"description": "promo points"
		}},
		{"node": {
			"type": {"code": "STAY"},
			"startDate": "2025-05-01",
			"endDate": "2025-05-02",
			"description": "Courtyard Somewhere"
		}}`)

	stays, err := StaysFromActivity(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stays, 2, "only STAY nodes are extracted")

	assert.Equal(t, "Le Méridien St. Louis Clayton", stays[0].Name)
	assert.Equal(t, "2025-04-12", stays[0].Date)
	assert.Equal(t, 3, stays[0].Nights)

	// Description fallback when no property entry carries a name.
	assert.Equal(t, "Courtyard Somewhere", stays[1].Name)
	assert.Equal(t, 1, stays[1].Nights)
}

func TestStayNights(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"normal stay", "2025-04-12", "2025-04-15", 3},
		{"single night", "2025-04-12", "2025-04-13", 1},
		{"end equals start", "2025-04-12", "2025-04-12", 1},
		{"end before start", "2025-04-15", "2025-04-12", 1},
		{"missing start", "", "2025-04-15", 1},
		{"missing end", "2025-04-12", "", 1},
		{"unparsable start", "sometime", "2025-04-15", 1},
		{"unparsable end", "2025-04-12", "later", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stayNights(tt.start, tt.end))
		})
	}
}

func TestStaysFromActivity_BadJSON(t *testing.T) {
	_, err := StaysFromActivity(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestStaysFromActivity_EmptyExport(t *testing.T) {
	stays, err := StaysFromActivity(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, stays)
}
