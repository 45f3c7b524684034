package booking

import (
	"fmt"
	"sort"
	"time"
)

// airportCodes is the set of airports the agency serves. Origin and
// destination selection elsewhere validates against it.
var airportCodes = map[string]struct{}{
	"JFK": {}, "LAX": {}, "ORD": {}, "MIA": {},
	"SFO": {}, "SEA": {}, "BOS": {}, "ATL": {},
}

// AirportCodes returns the valid airport codes in sorted order.
func AirportCodes() []string {
	codes := make([]string, 0, len(airportCodes))
	for code := range airportCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsValidAirport reports whether code names a served airport.
func IsValidAirport(code string) bool {
	_, ok := airportCodes[code]
	return ok
}

// Flight is the aggregate owning the seat occupancy table and the
// business-class upgrade queue for one scheduled departure. It is mutated by
// a single booking session and carries no internal locking; callers that
// share a Flight across goroutines must serialize access themselves.
type Flight struct {
	FlightNumber  string    `json:"flightNumber"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Stops         int       `json:"stops"`
	Price         float64   `json:"price"`

	seatOccupancy map[Seat]string
	upgradeQueue  []string
}

// NewFlight builds a Flight with an empty occupancy table and upgrade queue.
func NewFlight(origin, destination, flightNumber string, departure, arrival time.Time, stops int, price float64) *Flight {
	return &Flight{
		FlightNumber:  flightNumber,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Stops:         stops,
		Price:         price,
		seatOccupancy: make(map[Seat]string),
	}
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s | %s -> %s | departs %s | %d stop(s) | $%.2f",
		f.FlightNumber, f.Origin, f.Destination,
		f.DepartureTime.Format("2006-01-02 15:04"), f.Stops, f.Price)
}

// AddSeatOccupancy marks seat as held by email. A seat holds at most one
// occupant; booking an occupied or unknown seat is rejected.
func (f *Flight) AddSeatOccupancy(seat Seat, email string) error {
	if !seat.Valid() {
		return fmt.Errorf("%w: unknown seat %q on flight %s", ErrInvalidState, seat.ID, f.FlightNumber)
	}
	if _, taken := f.seatOccupancy[seat]; taken {
		return fmt.Errorf("%w: seat %s on flight %s is already occupied", ErrInvalidState, seat, f.FlightNumber)
	}
	f.seatOccupancy[seat] = email
	return nil
}

// RemoveSeatOccupancy releases the seat held by email. Releasing an email
// that holds no seat is a no-op.
func (f *Flight) RemoveSeatOccupancy(email string) {
	for seat, occupant := range f.seatOccupancy {
		if occupant == email {
			delete(f.seatOccupancy, seat)
			return
		}
	}
}

// Occupant returns the email holding seat, if any.
func (f *Flight) Occupant(seat Seat) (string, bool) {
	email, ok := f.seatOccupancy[seat]
	return email, ok
}

// SeatOf returns the seat currently held by email, if any.
func (f *Flight) SeatOf(email string) (Seat, bool) {
	for seat, occupant := range f.seatOccupancy {
		if occupant == email {
			return seat, true
		}
	}
	return Seat{}, false
}

// FreeSeats returns the identifiers of unoccupied seats, front rows first.
func (f *Flight) FreeSeats() []string {
	free := make([]string, 0)
	for _, id := range AvailableSeats() {
		if _, taken := f.seatOccupancy[Seat{ID: id}]; !taken {
			free = append(free, id)
		}
	}
	return free
}

// AddToUpgradeQueue appends email to the business-class upgrade queue. Only
// a customer currently holding a non-business seat may queue, and at most
// once at a time.
func (f *Flight) AddToUpgradeQueue(email string) error {
	for _, queued := range f.upgradeQueue {
		if queued == email {
			return fmt.Errorf("%w: %s is already queued for an upgrade on flight %s", ErrInvalidState, email, f.FlightNumber)
		}
	}
	seat, ok := f.SeatOf(email)
	if !ok {
		return fmt.Errorf("%w: %s holds no seat on flight %s", ErrInvalidState, email, f.FlightNumber)
	}
	if seat.Class() == SeatClassBusiness {
		return fmt.Errorf("%w: %s already holds business-class seat %s", ErrInvalidState, email, seat)
	}
	f.upgradeQueue = append(f.upgradeQueue, email)
	return nil
}

// RemoveFromUpgradeQueue removes email from anywhere in the queue.
func (f *Flight) RemoveFromUpgradeQueue(email string) {
	for i, queued := range f.upgradeQueue {
		if queued == email {
			f.upgradeQueue = append(f.upgradeQueue[:i], f.upgradeQueue[i+1:]...)
			return
		}
	}
}

// NextInUpgradeQueue returns, without removing, the email at the head of the
// queue. Peeking an empty queue is rejected.
func (f *Flight) NextInUpgradeQueue() (string, error) {
	if len(f.upgradeQueue) == 0 {
		return "", fmt.Errorf("%w: upgrade queue for flight %s is empty", ErrInvalidState, f.FlightNumber)
	}
	return f.upgradeQueue[0], nil
}

// UpgradeQueue returns a copy of the queue in arrival order.
func (f *Flight) UpgradeQueue() []string {
	queue := make([]string, len(f.upgradeQueue))
	copy(queue, f.upgradeQueue)
	return queue
}
