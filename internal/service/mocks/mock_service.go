package mocks

import (
	"context"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/GargSheetal/travel-agency-app/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SearchFlights(ctx context.Context, q service.SearchQuery) []*booking.Flight {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*booking.Flight)
}

func (m *MockBookingService) GetFlight(ctx context.Context, flightNumber string) (*booking.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Flight), args.Error(1)
}

func (m *MockBookingService) FreeSeats(ctx context.Context, flightNumber string) (map[booking.SeatClass][]string, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[booking.SeatClass][]string), args.Error(1)
}

func (m *MockBookingService) UpgradeQueue(ctx context.Context, flightNumber string) ([]string, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingService) CreateReservation(ctx context.Context, flightNumber string) (*booking.FlightReservation, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.FlightReservation), args.Error(1)
}

func (m *MockBookingService) GetReservation(ctx context.Context, id string) (*booking.FlightReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.FlightReservation), args.Error(1)
}

func (m *MockBookingService) SetCustomer(ctx context.Context, id string, customer booking.Customer) error {
	args := m.Called(ctx, id, customer)
	return args.Error(0)
}

func (m *MockBookingService) AssignSeat(ctx context.Context, id, seatID string) error {
	args := m.Called(ctx, id, seatID)
	return args.Error(0)
}

func (m *MockBookingService) SetServices(ctx context.Context, id string, specialAssistance, mealService bool) error {
	args := m.Called(ctx, id, specialAssistance, mealService)
	return args.Error(0)
}

func (m *MockBookingService) JoinUpgradeQueue(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingService) OpenBusinessSeat(ctx context.Context, flightNumber, seatID string) (string, error) {
	args := m.Called(ctx, flightNumber, seatID)
	return args.String(0), args.Error(1)
}

func (m *MockBookingService) ConfirmReservation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
