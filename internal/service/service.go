package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/GargSheetal/travel-agency-app/internal/catalog"
)

// ErrNotFound is returned when a flight or reservation does not exist.
var ErrNotFound = errors.New("not found")

// SearchQuery narrows the catalog. Zero values mean "no constraint" except
// MaxPrice/MaxStops, which apply only when their Has flag is set.
type SearchQuery struct {
	Origin      string
	Destination string
	Date        string
	MaxPrice    float64
	HasMaxPrice bool
	MaxStops    int
	HasMaxStops bool
}

// BookingService drives booking sessions over the in-memory flight catalog.
// The core aggregates carry no locking, so every mutation funnels through the
// service's single lock.
type BookingService interface {
	SearchFlights(ctx context.Context, q SearchQuery) []*booking.Flight
	GetFlight(ctx context.Context, flightNumber string) (*booking.Flight, error)
	FreeSeats(ctx context.Context, flightNumber string) (map[booking.SeatClass][]string, error)
	UpgradeQueue(ctx context.Context, flightNumber string) ([]string, error)

	CreateReservation(ctx context.Context, flightNumber string) (*booking.FlightReservation, error)
	GetReservation(ctx context.Context, id string) (*booking.FlightReservation, error)
	SetCustomer(ctx context.Context, id string, customer booking.Customer) error
	AssignSeat(ctx context.Context, id, seatID string) error
	SetServices(ctx context.Context, id string, specialAssistance, mealService bool) error
	JoinUpgradeQueue(ctx context.Context, id string) error
	OpenBusinessSeat(ctx context.Context, flightNumber, seatID string) (string, error)
	ConfirmReservation(ctx context.Context, id string) error
}

type bookingServiceImpl struct {
	mu           sync.Mutex
	flights      map[string]*booking.Flight
	reservations map[string]*booking.FlightReservation
}

// NewBookingService builds a BookingService over the given catalog. Flight
// numbers are the catalog key; a duplicate number keeps the first row.
func NewBookingService(flights []*booking.Flight) BookingService {
	svc := &bookingServiceImpl{
		flights:      make(map[string]*booking.Flight, len(flights)),
		reservations: make(map[string]*booking.FlightReservation),
	}
	for _, f := range flights {
		if _, exists := svc.flights[f.FlightNumber]; !exists {
			svc.flights[f.FlightNumber] = f
		}
	}
	return svc
}

func (s *bookingServiceImpl) SearchFlights(ctx context.Context, q SearchQuery) []*booking.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights := make([]*booking.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool {
		if !flights[i].DepartureTime.Equal(flights[j].DepartureTime) {
			return flights[i].DepartureTime.Before(flights[j].DepartureTime)
		}
		return flights[i].FlightNumber < flights[j].FlightNumber
	})
	if q.Origin != "" && q.Destination != "" {
		flights = catalog.Search(flights, q.Origin, q.Destination, q.Date)
	}
	return catalog.Filter(flights, func(f *booking.Flight) bool {
		if q.HasMaxPrice && f.Price > q.MaxPrice {
			return false
		}
		if q.HasMaxStops && f.Stops > q.MaxStops {
			return false
		}
		return true
	})
}

func (s *bookingServiceImpl) GetFlight(ctx context.Context, flightNumber string) (*booking.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flight(flightNumber)
}

func (s *bookingServiceImpl) flight(flightNumber string) (*booking.Flight, error) {
	flight, ok := s.flights[flightNumber]
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", flightNumber, ErrNotFound)
	}
	return flight, nil
}

func (s *bookingServiceImpl) reservation(id string) (*booking.FlightReservation, error) {
	res, ok := s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	return res, nil
}

func (s *bookingServiceImpl) FreeSeats(ctx context.Context, flightNumber string) (map[booking.SeatClass][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flight(flightNumber)
	if err != nil {
		return nil, err
	}
	byClass := make(map[booking.SeatClass][]string)
	for _, id := range flight.FreeSeats() {
		class := booking.NewSeat(id).Class()
		byClass[class] = append(byClass[class], id)
	}
	return byClass, nil
}

func (s *bookingServiceImpl) UpgradeQueue(ctx context.Context, flightNumber string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flight(flightNumber)
	if err != nil {
		return nil, err
	}
	return flight.UpgradeQueue(), nil
}

func (s *bookingServiceImpl) CreateReservation(ctx context.Context, flightNumber string) (*booking.FlightReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flight(flightNumber)
	if err != nil {
		return nil, err
	}
	res := booking.CreateFlightReservation(flight)
	s.reservations[res.ID()] = res
	return res, nil
}

func (s *bookingServiceImpl) GetReservation(ctx context.Context, id string) (*booking.FlightReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservation(id)
}

func (s *bookingServiceImpl) SetCustomer(ctx context.Context, id string, customer booking.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.reservation(id)
	if err != nil {
		return err
	}
	if err := res.SetCustomerName(customer.Name); err != nil {
		return err
	}
	if err := res.SetCustomerEmail(customer.Email); err != nil {
		return err
	}
	return res.SetCustomerPhone(customer.Phone)
}

// AssignSeat books seatID for the reservation's customer, releasing any seat
// the customer held before. The new seat is validated first so a rejected
// assignment never loses the old one.
func (s *bookingServiceImpl) AssignSeat(ctx context.Context, id, seatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.reservation(id)
	if err != nil {
		return err
	}
	if res.Status() == booking.StatusConfirmed {
		return fmt.Errorf("%w: reservation %s is confirmed", booking.ErrInvalidState, id)
	}
	email := strings.TrimSpace(res.Customer().Email)
	if email == "" {
		return fmt.Errorf("%w: customer email must be set before assigning a seat", booking.ErrInvalidState)
	}

	flight := res.Flight()
	seat := booking.NewSeat(seatID)
	if !seat.Valid() {
		return fmt.Errorf("%w: unknown seat %q on flight %s", booking.ErrInvalidState, seatID, flight.FlightNumber)
	}
	if occupant, taken := flight.Occupant(seat); taken {
		if occupant == email {
			return res.SetSeat(seat)
		}
		return fmt.Errorf("%w: seat %s on flight %s is already occupied", booking.ErrInvalidState, seat, flight.FlightNumber)
	}

	flight.RemoveSeatOccupancy(email)
	if err := flight.AddSeatOccupancy(seat, email); err != nil {
		return err
	}
	return res.SetSeat(seat)
}

func (s *bookingServiceImpl) SetServices(ctx context.Context, id string, specialAssistance, mealService bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.reservation(id)
	if err != nil {
		return err
	}
	if err := res.SetNeedSpecialAssistance(specialAssistance); err != nil {
		return err
	}
	return res.SetNeedMealService(mealService)
}

func (s *bookingServiceImpl) JoinUpgradeQueue(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.reservation(id)
	if err != nil {
		return err
	}
	return res.Flight().AddToUpgradeQueue(res.Customer().Email)
}

// OpenBusinessSeat offers a newly freed business-class seat to the head of
// the upgrade queue: release the customer's current seat, assign the new one,
// then dequeue. Dequeuing happens only after the seat is assigned, so a
// failure mid-sequence leaves the customer queued rather than silently
// dropped. Returns the upgraded customer's email.
func (s *bookingServiceImpl) OpenBusinessSeat(ctx context.Context, flightNumber, seatID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flight(flightNumber)
	if err != nil {
		return "", err
	}
	seat := booking.NewSeat(seatID)
	if !seat.Valid() {
		return "", fmt.Errorf("%w: unknown seat %q on flight %s", booking.ErrInvalidState, seatID, flightNumber)
	}
	if seat.Class() != booking.SeatClassBusiness {
		return "", fmt.Errorf("%w: seat %s is not business class", booking.ErrInvalidState, seat)
	}
	if _, taken := flight.Occupant(seat); taken {
		return "", fmt.Errorf("%w: seat %s on flight %s is already occupied", booking.ErrInvalidState, seat, flightNumber)
	}

	email, err := flight.NextInUpgradeQueue()
	if err != nil {
		return "", err
	}
	flight.RemoveSeatOccupancy(email)
	if err := flight.AddSeatOccupancy(seat, email); err != nil {
		return "", err
	}
	flight.RemoveFromUpgradeQueue(email)
	return email, nil
}

func (s *bookingServiceImpl) ConfirmReservation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.reservation(id)
	if err != nil {
		return err
	}
	return res.Confirm()
}
