package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatClassDerivation(t *testing.T) {
	tests := []struct {
		id    string
		class SeatClass
	}{
		{"1A", SeatClassBusiness},
		{"4F", SeatClassBusiness},
		{"5A", SeatClassEconomy},
		{"12A", SeatClassEconomy},
		{"30F", SeatClassEconomy},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.class, NewSeat(tt.id).Class())
		})
	}
}

func TestSeatValid(t *testing.T) {
	assert.True(t, NewSeat("12a").Valid(), "identifier should be normalized to upper case")
	assert.True(t, NewSeat(" 1F ").Valid())
	assert.False(t, NewSeat("0A").Valid())
	assert.False(t, NewSeat("31A").Valid())
	assert.False(t, NewSeat("12G").Valid())
	assert.False(t, NewSeat("A").Valid())
	assert.False(t, NewSeat("").Valid())
}

func TestSeatEqualityByIdentifier(t *testing.T) {
	// Two independently constructed seats must act as one occupancy key.
	assert.Equal(t, NewSeat("12A"), NewSeat("12a"))
}

func TestAvailableSeats(t *testing.T) {
	seats := AvailableSeats()
	assert.Len(t, seats, seatRows*len(seatColumns))
	assert.Equal(t, "1A", seats[0])
	assert.Contains(t, seats, "30F")
}
