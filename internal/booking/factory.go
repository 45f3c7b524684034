package booking

import "github.com/google/uuid"

// CreateFlightReservation allocates a new unconfirmed reservation bound to
// flight, with a fresh short identifier and an empty customer. It never fails.
func CreateFlightReservation(flight *Flight) *FlightReservation {
	return &FlightReservation{
		id:     uuid.New().String()[:8],
		flight: flight,
		status: StatusUnconfirmed,
	}
}
