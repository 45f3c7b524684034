package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatClass identifies the cabin tier of a seat.
type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
)

const (
	seatRows = 30
	// Rows 1 through businessRows form the business cabin.
	businessRows = 4
)

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

// Seat is a value identifying a cabin position, e.g. "12A". Equality is by
// identifier, so Seat can key the occupancy map directly.
type Seat struct {
	ID string
}

// NewSeat builds a Seat from a raw identifier. The identifier is normalized
// to upper case; validity is checked when the seat is booked.
func NewSeat(id string) Seat {
	return Seat{ID: strings.ToUpper(strings.TrimSpace(id))}
}

// Class derives the cabin tier from the identifier alone: the front rows are
// business, everything behind them economy. Unparseable identifiers report
// economy; they are rejected at booking time anyway.
func (s Seat) Class() SeatClass {
	row, _, err := splitSeatID(s.ID)
	if err != nil {
		return SeatClassEconomy
	}
	if row <= businessRows {
		return SeatClassBusiness
	}
	return SeatClassEconomy
}

// Valid reports whether the identifier names a seat that exists on the aircraft.
func (s Seat) Valid() bool {
	row, col, err := splitSeatID(s.ID)
	if err != nil {
		return false
	}
	if row < 1 || row > seatRows {
		return false
	}
	for _, c := range seatColumns {
		if c == col {
			return true
		}
	}
	return false
}

func (s Seat) String() string {
	return s.ID
}

func splitSeatID(id string) (row int, col string, err error) {
	if len(id) < 2 {
		return 0, "", fmt.Errorf("seat id %q too short", id)
	}
	row, err = strconv.Atoi(id[:len(id)-1])
	if err != nil {
		return 0, "", fmt.Errorf("seat id %q has no row number", id)
	}
	return row, id[len(id)-1:], nil
}

// AvailableSeats enumerates every valid seat identifier, front rows first.
func AvailableSeats() []string {
	seats := make([]string, 0, seatRows*len(seatColumns))
	for row := 1; row <= seatRows; row++ {
		for _, col := range seatColumns {
			seats = append(seats, fmt.Sprintf("%d%s", row, col))
		}
	}
	return seats
}
