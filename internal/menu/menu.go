// Package menu drives an interactive flight-booking session on a terminal:
// search, filter, flight selection, passenger data, seat assignment, the
// business-class upgrade step and final confirmation. All state lives in the
// booking service; the menu only prompts, validates and re-prompts.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/GargSheetal/travel-agency-app/internal/catalog"
	"github.com/GargSheetal/travel-agency-app/internal/service"
	"github.com/GargSheetal/travel-agency-app/internal/validation"
	"go.uber.org/zap"
)

var (
	// ErrTooManyAttempts is returned when a prompt keeps receiving invalid
	// input. Re-prompting is a bounded loop, never recursion, so scripted or
	// bulk input cannot grow the stack.
	ErrTooManyAttempts = errors.New("too many invalid attempts")

	// ErrNoFlights is returned when search or filtering leaves nothing to book.
	ErrNoFlights = errors.New("no flights match")
)

// Menu runs one booking session over an input/output pair.
type Menu struct {
	svc         service.BookingService
	in          *bufio.Scanner
	out         io.Writer
	log         *zap.Logger
	maxAttempts int
}

func New(svc service.BookingService, in io.Reader, out io.Writer, log *zap.Logger, maxAttempts int) *Menu {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Menu{
		svc:         svc,
		in:          bufio.NewScanner(in),
		out:         out,
		log:         log,
		maxAttempts: maxAttempts,
	}
}

// Run walks the whole reservation workflow and returns the confirmed
// reservation. Validation failures inside the core are surfaced to the user
// for correction; only exhausted retries, closed input or a failed final
// confirmation abort the session.
func (m *Menu) Run(ctx context.Context) (*booking.FlightReservation, error) {
	m.log.Info("flight reservation started")

	origin, err := m.promptOrigin()
	if err != nil {
		return nil, err
	}
	destination, err := m.promptDestination(origin)
	if err != nil {
		return nil, err
	}
	date, err := m.promptDate()
	if err != nil {
		return nil, err
	}

	flights := m.svc.SearchFlights(ctx, service.SearchQuery{
		Origin:      origin,
		Destination: destination,
		Date:        date,
	})
	if len(flights) == 0 {
		fmt.Fprintln(m.out, "No flights found for that route and date.")
		return nil, ErrNoFlights
	}
	m.printFlights("Search Results", flights)

	fmt.Fprintln(m.out, "Set Filters:")
	maxPrice, err := m.promptFloat("Enter max price: ")
	if err != nil {
		return nil, err
	}
	maxStops, err := m.promptInt("Enter max number of stops: ")
	if err != nil {
		return nil, err
	}
	filtered := catalog.Filter(flights, func(f *booking.Flight) bool {
		return f.Price <= maxPrice && f.Stops <= maxStops
	})
	if len(filtered) == 0 {
		fmt.Fprintln(m.out, "No flights match those filters.")
		return nil, ErrNoFlights
	}
	m.printFlights("Filtered Results", filtered)

	flight, err := m.promptSelectFlight(filtered)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(m.out, "Flight selected: %s\n", flight)

	res, err := m.svc.CreateReservation(ctx, flight.FlightNumber)
	if err != nil {
		return nil, err
	}
	m.log.Debug("flight reservation initiated", zap.String("reservationId", res.ID()))

	customer, err := m.promptCustomer()
	if err != nil {
		return nil, err
	}
	if err := m.svc.SetCustomer(ctx, res.ID(), customer); err != nil {
		return nil, err
	}

	if err := m.promptSeat(ctx, res.ID(), flight.FlightNumber); err != nil {
		return nil, err
	}

	if err := m.promptUpgradeQueue(ctx, res.ID(), flight.FlightNumber); err != nil {
		return nil, err
	}
	m.openBusinessSeatStep(ctx, flight.FlightNumber)

	assistance, err := m.promptYesNo("Need special assistance? (y/n): ")
	if err != nil {
		return nil, err
	}
	meal, err := m.promptYesNo("Need meal service? (y/n): ")
	if err != nil {
		return nil, err
	}
	if err := m.svc.SetServices(ctx, res.ID(), assistance, meal); err != nil {
		return nil, err
	}

	if err := m.svc.ConfirmReservation(ctx, res.ID()); err != nil {
		m.log.Error("flight cannot be reserved", zap.Error(err))
		return nil, err
	}
	fmt.Fprintf(m.out, "Reservation %s confirmed.\n", res.ID())
	m.log.Info("reservation confirmed", zap.String("reservationId", res.ID()))

	return m.svc.GetReservation(ctx, res.ID())
}

func (m *Menu) promptOrigin() (string, error) {
	label := fmt.Sprintf("Enter origin airport %v: ", booking.AirportCodes())
	return m.promptValidated(label, func(code string) error {
		if !booking.IsValidAirport(strings.ToUpper(code)) {
			return fmt.Errorf("unknown airport code %q", code)
		}
		return nil
	})
}

func (m *Menu) promptDestination(origin string) (string, error) {
	label := fmt.Sprintf("Enter destination airport %v: ", booking.AirportCodes())
	return m.promptValidated(label, func(code string) error {
		if !booking.IsValidAirport(strings.ToUpper(code)) {
			return fmt.Errorf("unknown airport code %q", code)
		}
		if strings.EqualFold(code, origin) {
			return fmt.Errorf("destination airport cannot be the same as origin")
		}
		return nil
	})
}

func (m *Menu) promptDate() (string, error) {
	raw, err := m.promptValidated("Enter departure date (yyyy-mm-dd): ", func(date string) error {
		_, verr := validation.Date(date)
		return verr
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (m *Menu) promptCustomer() (booking.Customer, error) {
	name, err := m.promptValidated("Enter customer name: ", func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		return nil
	})
	if err != nil {
		return booking.Customer{}, err
	}
	email, err := m.promptValidated("Enter customer email: ", validation.Email)
	if err != nil {
		return booking.Customer{}, err
	}
	phone, err := m.promptValidated("Enter customer phone: ", validation.Phone)
	if err != nil {
		return booking.Customer{}, err
	}
	return booking.Customer{Name: name, Email: email, Phone: phone}, nil
}

func (m *Menu) promptSeat(ctx context.Context, reservationID, flightNumber string) error {
	free, err := m.svc.FreeSeats(ctx, flightNumber)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Free seats: %d business (rows 1-4), %d economy\n",
		len(free[booking.SeatClassBusiness]), len(free[booking.SeatClassEconomy]))

	for attempt := 0; attempt < m.maxAttempts; attempt++ {
		seatID, perr := m.promptLine("Select a seat (e.g. 12A): ")
		if perr != nil {
			return perr
		}
		aerr := m.svc.AssignSeat(ctx, reservationID, seatID)
		if aerr == nil {
			fmt.Fprintf(m.out, "Seat booked: %s\n", strings.ToUpper(seatID))
			return nil
		}
		if !errors.Is(aerr, booking.ErrInvalidState) {
			return aerr
		}
		fmt.Fprintf(m.out, "%v. Enter input again...\n", aerr)
		m.log.Warn("seat assignment rejected", zap.Error(aerr))
	}
	return fmt.Errorf("seat selection: %w after %d attempts", ErrTooManyAttempts, m.maxAttempts)
}

func (m *Menu) promptUpgradeQueue(ctx context.Context, reservationID, flightNumber string) error {
	queue, err := m.svc.UpgradeQueue(ctx, flightNumber)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Queue for upgrade to business class: %v\n", queue)

	wantUpgrade, err := m.promptYesNo("Do you want an upgrade to a business class seat? (y/n): ")
	if err != nil {
		return err
	}
	if !wantUpgrade {
		return nil
	}
	if err := m.svc.JoinUpgradeQueue(ctx, reservationID); err != nil {
		if errors.Is(err, booking.ErrInvalidState) {
			fmt.Fprintf(m.out, "Cannot join upgrade queue: %v\n", err)
			m.log.Warn("upgrade queue join rejected", zap.Error(err))
			return nil
		}
		return err
	}
	fmt.Fprintln(m.out, "Added to the upgrade queue.")
	return nil
}

// openBusinessSeatStep is the operator's side of the upgrade workflow: when a
// business seat frees up it is offered to the head of the queue. State errors
// here are logged and do not abort the customer's session.
func (m *Menu) openBusinessSeatStep(ctx context.Context, flightNumber string) {
	queue, err := m.svc.UpgradeQueue(ctx, flightNumber)
	if err != nil || len(queue) == 0 {
		m.log.Debug("no one queued for an upgrade", zap.String("flight", flightNumber))
		return
	}
	fmt.Fprintf(m.out, "Queue for upgrade to business class: %v\n", queue)

	seatID, err := m.promptLine(fmt.Sprintf("Open new business class seat for flight %s: ", flightNumber))
	if err != nil {
		m.log.Warn("business seat prompt aborted", zap.Error(err))
		return
	}
	upgraded, err := m.svc.OpenBusinessSeat(ctx, flightNumber, seatID)
	if err != nil {
		fmt.Fprintf(m.out, "Upgrade failed: %v\n", err)
		m.log.Error("business seat upgrade failed", zap.Error(err))
		return
	}
	fmt.Fprintf(m.out, "Upgraded %s to seat %s.\n", upgraded, strings.ToUpper(seatID))
}

func (m *Menu) printFlights(title string, flights []*booking.Flight) {
	fmt.Fprintf(m.out, "\n%s -----\n", title)
	for i, f := range flights {
		fmt.Fprintf(m.out, "%d | %s\n", i+1, f)
	}
}

func (m *Menu) promptSelectFlight(flights []*booking.Flight) (*booking.Flight, error) {
	for attempt := 0; attempt < m.maxAttempts; attempt++ {
		idx, err := m.promptInt("Select your flight: ")
		if err != nil {
			return nil, err
		}
		if idx >= 1 && idx <= len(flights) {
			return flights[idx-1], nil
		}
		fmt.Fprintf(m.out, "Enter a number between 1 and %d.\n", len(flights))
	}
	return nil, fmt.Errorf("flight selection: %w after %d attempts", ErrTooManyAttempts, m.maxAttempts)
}

// promptLine reads one trimmed line, failing when input is exhausted.
func (m *Menu) promptLine(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptValidated(label string, check func(string) error) (string, error) {
	for attempt := 0; attempt < m.maxAttempts; attempt++ {
		line, err := m.promptLine(label)
		if err != nil {
			return "", err
		}
		if verr := check(line); verr != nil {
			fmt.Fprintf(m.out, "%v. Enter input again...\n", verr)
			m.log.Warn("invalid input", zap.Error(verr))
			continue
		}
		return line, nil
	}
	return "", fmt.Errorf("%w (%d)", ErrTooManyAttempts, m.maxAttempts)
}

func (m *Menu) promptFloat(label string) (float64, error) {
	raw, err := m.promptValidated(label, func(s string) error {
		_, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.promptValidated(label, func(s string) error {
		_, perr := strconv.Atoi(s)
		if perr != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (m *Menu) promptYesNo(label string) (bool, error) {
	raw, err := m.promptValidated(label, func(s string) error {
		if _, perr := parseYesNo(s); perr != nil {
			return perr
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return parseYesNo(raw)
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n, got %q", s)
}
