package catalog

import (
	"strings"
	"testing"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	flights, err := Load("testdata/flights.csv")
	require.NoError(t, err)
	require.Len(t, flights, 5)

	first := flights[0]
	assert.Equal(t, "AA100", first.FlightNumber)
	assert.Equal(t, "JFK", first.Origin)
	assert.Equal(t, "LAX", first.Destination)
	assert.Equal(t, 0, first.Stops)
	assert.Equal(t, 325.50, first.Price)
	assert.Equal(t, "2026-03-14", first.DepartureTime.Format("2006-01-02"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.csv")
	require.Error(t, err)
}

func TestParse_MalformedRows(t *testing.T) {
	header := "origin,destination,flightNumber,departureTime,arrivalTime,stops,price\n"

	tests := []struct {
		name string
		row  string
	}{
		{"bad departure", "JFK,LAX,AA1,yesterday,2026-03-14T15:45:00Z,0,100"},
		{"bad stops", "JFK,LAX,AA1,2026-03-14T09:30:00Z,2026-03-14T15:45:00Z,two,100"},
		{"bad price", "JFK,LAX,AA1,2026-03-14T09:30:00Z,2026-03-14T15:45:00Z,0,cheap"},
		{"short row", "JFK,LAX,AA1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	flights, err := Load("testdata/flights.csv")
	require.NoError(t, err)

	results := Search(flights, "jfk", "lax", "2026-03-14")
	require.Len(t, results, 2)
	assert.Equal(t, "AA100", results[0].FlightNumber)
	assert.Equal(t, "UA210", results[1].FlightNumber)

	assert.Len(t, Search(flights, "JFK", "LAX", ""), 3)
	assert.Empty(t, Search(flights, "JFK", "SEA", "2026-03-14"))
}

func TestFilter_PriceAndStopCeilings(t *testing.T) {
	flights, err := Load("testdata/flights.csv")
	require.NoError(t, err)

	maxPrice, maxStops := 330.0, 0
	cheapDirect := Filter(flights, func(f *booking.Flight) bool {
		return f.Price <= maxPrice && f.Stops <= maxStops
	})

	require.Len(t, cheapDirect, 3)
	for _, f := range cheapDirect {
		assert.LessOrEqual(t, f.Price, maxPrice)
		assert.LessOrEqual(t, f.Stops, maxStops)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)
}
