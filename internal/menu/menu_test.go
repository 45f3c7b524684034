package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/GargSheetal/travel-agency-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() service.BookingService {
	departure := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return service.NewBookingService([]*booking.Flight{
		booking.NewFlight("JFK", "LAX", "AA100", departure, departure.Add(6*time.Hour), 0, 325.50),
		booking.NewFlight("JFK", "LAX", "UA210", departure.Add(4*time.Hour), departure.Add(12*time.Hour), 1, 249.00),
	})
}

// runSession feeds a scripted terminal session, one answer per line.
func runSession(t *testing.T, svc service.BookingService, script ...string) (*booking.FlightReservation, *bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	m := New(svc, strings.NewReader(strings.Join(script, "\n")+"\n"), &out, zap.NewNop(), 3)
	res, err := m.Run(context.Background())
	return res, &out, err
}

func TestRun_FullBookingWithUpgrade(t *testing.T) {
	svc := newTestService()

	res, out, err := runSession(t, svc,
		"JFK",        // origin
		"LAX",        // destination
		"2026-03-14", // departure date
		"400",        // max price
		"1",          // max stops
		"1",          // select AA100
		"Jane Doe",
		"jane@y.com",
		"555-0100",
		"12A", // seat
		"y",   // join upgrade queue
		"1A",  // operator opens a business seat
		"y",   // special assistance
		"n",   // meal service
	)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, booking.StatusConfirmed, res.Status())
	assert.Equal(t, "Jane Doe", res.Customer().Name)
	assert.True(t, res.NeedSpecialAssistance())
	assert.False(t, res.NeedMealService())

	// The upgrade moved the customer's occupancy to the business seat.
	flight, ferr := svc.GetFlight(context.Background(), "AA100")
	require.NoError(t, ferr)
	seat, ok := flight.SeatOf("jane@y.com")
	require.True(t, ok)
	assert.Equal(t, "1A", seat.ID)

	queue, qerr := svc.UpgradeQueue(context.Background(), "AA100")
	require.NoError(t, qerr)
	assert.Empty(t, queue)

	assert.Contains(t, out.String(), "confirmed")
}

func TestRun_NoUpgradeWanted(t *testing.T) {
	svc := newTestService()

	res, _, err := runSession(t, svc,
		"JFK", "LAX", "2026-03-14",
		"400", "1", "2", // select UA210
		"Bob Roe", "bob@y.com", "555-0101",
		"20C",
		"n", // decline upgrade; queue stays empty so no operator step
		"n", "y",
	)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, res.Status())
	assert.True(t, res.NeedMealService())

	seat, ok := res.Seat()
	require.True(t, ok)
	assert.Equal(t, "20C", seat.ID)
}

func TestRun_SeatRetryAfterRejection(t *testing.T) {
	svc := newTestService()

	// Occupy 12A up front so the first choice is rejected.
	first, err := svc.CreateReservation(context.Background(), "AA100")
	require.NoError(t, err)
	require.NoError(t, svc.SetCustomer(context.Background(), first.ID(),
		booking.Customer{Name: "First", Email: "first@y.com", Phone: "555-0000"}))
	require.NoError(t, svc.AssignSeat(context.Background(), first.ID(), "12A"))

	res, out, rerr := runSession(t, svc,
		"JFK", "LAX", "2026-03-14",
		"400", "1", "1",
		"Jane Doe", "jane@y.com", "555-0100",
		"12A", // occupied: rejected, re-prompted
		"12B", // free
		"n", "n", "n",
	)

	require.NoError(t, rerr)
	seat, ok := res.Seat()
	require.True(t, ok)
	assert.Equal(t, "12B", seat.ID)
	assert.Contains(t, out.String(), "Enter input again")
}

func TestRun_BoundedRetryExhaustion(t *testing.T) {
	svc := newTestService()

	_, _, err := runSession(t, svc, "XXX", "YYY", "ZZZ")
	require.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestRun_InvalidInputsRepromptedOnce(t *testing.T) {
	svc := newTestService()

	res, _, err := runSession(t, svc,
		"XXX", "JFK", // bad origin, then good
		"JFK", "LAX", // destination same as origin, then good
		"not-a-date", "2026-03-14",
		"cheap", "400",
		"1",
		"1",
		"Jane Doe",
		"not-an-email", "jane@y.com",
		"words", "555-0100",
		"12A",
		"n", "n", "n",
	)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, res.Status())
}

func TestRun_NoFlightsFound(t *testing.T) {
	svc := newTestService()

	_, _, err := runSession(t, svc, "ORD", "MIA", "2026-03-14")
	require.ErrorIs(t, err, ErrNoFlights)
}

func TestRun_FiltersRemoveEverything(t *testing.T) {
	svc := newTestService()

	_, _, err := runSession(t, svc, "JFK", "LAX", "2026-03-14", "10", "0")
	require.ErrorIs(t, err, ErrNoFlights)
}

func TestRun_UpgradeFailureDoesNotAbortSession(t *testing.T) {
	svc := newTestService()

	// Operator opens an economy seat by mistake; the customer stays queued
	// and the reservation still confirms.
	res, out, err := runSession(t, svc,
		"JFK", "LAX", "2026-03-14",
		"400", "1", "1",
		"Jane Doe", "jane@y.com", "555-0100",
		"12A",
		"y",
		"20F", // not a business seat
		"n", "n",
	)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, res.Status())
	assert.Contains(t, out.String(), "Upgrade failed")

	queue, qerr := svc.UpgradeQueue(context.Background(), "AA100")
	require.NoError(t, qerr)
	assert.Equal(t, []string{"jane@y.com"}, queue)
}
