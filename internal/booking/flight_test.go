package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlight() *Flight {
	departure := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return NewFlight("JFK", "LAX", "AA100", departure, departure.Add(6*time.Hour), 0, 325.50)
}

func TestAddSeatOccupancy_DoubleBooking(t *testing.T) {
	flight := newTestFlight()
	seat := NewSeat("12A")

	require.NoError(t, flight.AddSeatOccupancy(seat, "x@y.com"))

	// Same seat again, for anyone including the original occupant.
	err := flight.AddSeatOccupancy(seat, "z@y.com")
	require.ErrorIs(t, err, ErrInvalidState)

	err = flight.AddSeatOccupancy(seat, "x@y.com")
	require.ErrorIs(t, err, ErrInvalidState)

	occupant, ok := flight.Occupant(seat)
	require.True(t, ok)
	assert.Equal(t, "x@y.com", occupant)
}

func TestAddSeatOccupancy_UnknownSeat(t *testing.T) {
	flight := newTestFlight()

	err := flight.AddSeatOccupancy(NewSeat("99Z"), "x@y.com")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRemoveSeatOccupancy_ReleasesSeatForRebooking(t *testing.T) {
	flight := newTestFlight()
	seat := NewSeat("12A")

	require.NoError(t, flight.AddSeatOccupancy(seat, "x@y.com"))
	flight.RemoveSeatOccupancy("x@y.com")

	require.NoError(t, flight.AddSeatOccupancy(seat, "z@y.com"))
}

func TestRemoveSeatOccupancy_UnknownEmailIsNoOp(t *testing.T) {
	flight := newTestFlight()
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("12A"), "x@y.com"))

	// Releasing an email that holds no seat must not disturb anything.
	flight.RemoveSeatOccupancy("nobody@y.com")

	_, ok := flight.SeatOf("x@y.com")
	assert.True(t, ok)
}

func TestAddToUpgradeQueue_DuplicateEntry(t *testing.T) {
	flight := newTestFlight()
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("12A"), "x@y.com"))

	require.NoError(t, flight.AddToUpgradeQueue("x@y.com"))

	err := flight.AddToUpgradeQueue("x@y.com")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestAddToUpgradeQueue_RequiresSeat(t *testing.T) {
	flight := newTestFlight()

	err := flight.AddToUpgradeQueue("x@y.com")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestAddToUpgradeQueue_BusinessSeatNotEligible(t *testing.T) {
	flight := newTestFlight()
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("2C"), "x@y.com"))

	err := flight.AddToUpgradeQueue("x@y.com")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestNextInUpgradeQueue_Empty(t *testing.T) {
	flight := newTestFlight()

	_, err := flight.NextInUpgradeQueue()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestUpgradeQueue_FIFOWithMidQueueRemoval(t *testing.T) {
	flight := newTestFlight()
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("10A"), "a@y.com"))
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("10B"), "b@y.com"))
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("10C"), "c@y.com"))

	require.NoError(t, flight.AddToUpgradeQueue("a@y.com"))
	require.NoError(t, flight.AddToUpgradeQueue("b@y.com"))
	require.NoError(t, flight.AddToUpgradeQueue("c@y.com"))

	flight.RemoveFromUpgradeQueue("b@y.com")

	next, err := flight.NextInUpgradeQueue()
	require.NoError(t, err)
	assert.Equal(t, "a@y.com", next)

	// Upgrade A: release the old seat, assign a business seat, then dequeue.
	flight.RemoveSeatOccupancy("a@y.com")
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("1A"), "a@y.com"))
	flight.RemoveFromUpgradeQueue("a@y.com")

	next, err = flight.NextInUpgradeQueue()
	require.NoError(t, err)
	assert.Equal(t, "c@y.com", next)
}

func TestFreeSeats_ExcludesOccupied(t *testing.T) {
	flight := newTestFlight()
	require.NoError(t, flight.AddSeatOccupancy(NewSeat("1A"), "x@y.com"))

	free := flight.FreeSeats()
	assert.Len(t, free, len(AvailableSeats())-1)
	assert.NotContains(t, free, "1A")
	assert.Contains(t, free, "1B")
}

func TestAirportCodes(t *testing.T) {
	codes := AirportCodes()
	assert.Contains(t, codes, "JFK")
	assert.True(t, IsValidAirport("LAX"))
	assert.False(t, IsValidAirport("XXX"))
}
