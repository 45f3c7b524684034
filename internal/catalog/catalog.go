// Package catalog loads the flight dataset and narrows it for display. The
// dataset is a flat CSV file read once at startup; there is no persistence
// behind it.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
)

// CSV column order: origin, destination, flightNumber, departureTime,
// arrivalTime, stops, price. Timestamps are RFC 3339. The first row is the
// header and is skipped.
const datasetColumns = 7

// Load reads the flight dataset from a CSV file on disk.
func Load(path string) ([]*booking.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flight dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads flight rows from r, one Flight per data row.
func Parse(r io.Reader) ([]*booking.Flight, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = datasetColumns
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read flight dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("flight dataset is empty")
	}

	flights := make([]*booking.Flight, 0, len(records)-1)
	for i, row := range records[1:] {
		flight, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("flight dataset row %d: %w", i+2, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

func parseRow(row []string) (*booking.Flight, error) {
	departure, err := time.Parse(time.RFC3339, row[3])
	if err != nil {
		return nil, fmt.Errorf("invalid departure time %q: %w", row[3], err)
	}
	arrival, err := time.Parse(time.RFC3339, row[4])
	if err != nil {
		return nil, fmt.Errorf("invalid arrival time %q: %w", row[4], err)
	}
	stops, err := strconv.Atoi(row[5])
	if err != nil {
		return nil, fmt.Errorf("invalid stop count %q: %w", row[5], err)
	}
	price, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", row[6], err)
	}
	return booking.NewFlight(
		strings.ToUpper(row[0]), strings.ToUpper(row[1]), row[2],
		departure, arrival, stops, price,
	), nil
}

// Search narrows flights to those flying origin -> destination on the given
// departure date (yyyy-mm-dd). Airport matching is case-insensitive; an empty
// date matches any day.
func Search(flights []*booking.Flight, origin, destination, date string) []*booking.Flight {
	return Filter(flights, func(f *booking.Flight) bool {
		return strings.EqualFold(f.Origin, origin) &&
			strings.EqualFold(f.Destination, destination) &&
			(date == "" || f.DepartureTime.Format("2006-01-02") == date)
	})
}
