package booking

import (
	"fmt"
	"strings"
)

// ReservationStatus tracks the one-way Unconfirmed -> Confirmed transition.
type ReservationStatus string

const (
	StatusUnconfirmed ReservationStatus = "unconfirmed"
	StatusConfirmed   ReservationStatus = "confirmed"
)

// Customer identifies the person a reservation is for. All three fields must
// be present before the reservation can be confirmed; format checking is the
// input layer's job.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// FlightReservation binds a customer to a seat on a flight together with the
// requested in-flight services. Once confirmed it rejects further mutation.
type FlightReservation struct {
	id     string
	flight *Flight

	customer              Customer
	seat                  *Seat
	needSpecialAssistance bool
	needMealService       bool
	status                ReservationStatus
}

func (r *FlightReservation) ID() string                  { return r.id }
func (r *FlightReservation) Flight() *Flight             { return r.flight }
func (r *FlightReservation) Customer() Customer          { return r.customer }
func (r *FlightReservation) Status() ReservationStatus   { return r.status }
func (r *FlightReservation) NeedSpecialAssistance() bool { return r.needSpecialAssistance }
func (r *FlightReservation) NeedMealService() bool       { return r.needMealService }

// Seat returns the assigned seat, if one has been set.
func (r *FlightReservation) Seat() (Seat, bool) {
	if r.seat == nil {
		return Seat{}, false
	}
	return *r.seat, true
}

func (r *FlightReservation) mutable() error {
	if r.status == StatusConfirmed {
		return fmt.Errorf("%w: reservation %s is confirmed and can no longer change", ErrInvalidState, r.id)
	}
	return nil
}

func (r *FlightReservation) SetCustomerName(name string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.customer.Name = name
	return nil
}

func (r *FlightReservation) SetCustomerEmail(email string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.customer.Email = email
	return nil
}

func (r *FlightReservation) SetCustomerPhone(phone string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.customer.Phone = phone
	return nil
}

func (r *FlightReservation) SetSeat(seat Seat) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.seat = &seat
	return nil
}

func (r *FlightReservation) SetNeedSpecialAssistance(need bool) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.needSpecialAssistance = need
	return nil
}

func (r *FlightReservation) SetNeedMealService(need bool) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.needMealService = need
	return nil
}

// Confirm validates that every required field is present and transitions the
// reservation to confirmed. The transition is terminal; confirming an already
// confirmed reservation is a no-op. On failure the reservation stays
// unconfirmed and usable, so the caller can supply the missing data and retry.
func (r *FlightReservation) Confirm() error {
	if r.status == StatusConfirmed {
		return nil
	}
	switch {
	case strings.TrimSpace(r.customer.Name) == "":
		return fmt.Errorf("%w: customer name is required", ErrMissingInput)
	case strings.TrimSpace(r.customer.Email) == "":
		return fmt.Errorf("%w: customer email is required", ErrMissingInput)
	case strings.TrimSpace(r.customer.Phone) == "":
		return fmt.Errorf("%w: customer phone is required", ErrMissingInput)
	case r.seat == nil:
		return fmt.Errorf("%w: no seat has been assigned", ErrMissingInput)
	}
	r.status = StatusConfirmed
	return nil
}
