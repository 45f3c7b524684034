package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GargSheetal/travel-agency-app/internal/booking"
	"github.com/GargSheetal/travel-agency-app/internal/service"
	"github.com/GargSheetal/travel-agency-app/internal/validation"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the API.
type Handler struct {
	bookingService service.BookingService
}

// NewHandler creates a new Handler instance.
func NewHandler(bookingService service.BookingService) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrMissingInput):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, booking.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// Request bodies
type createReservationRequest struct {
	FlightNumber string `json:"flightNumber" validate:"required"`
}

type customerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=7"`
}

type seatRequest struct {
	SeatID string `json:"seatId" validate:"required"`
}

type servicesRequest struct {
	NeedSpecialAssistance bool `json:"needSpecialAssistance"`
	NeedMealService       bool `json:"needMealService"`
}

type reservationResponse struct {
	ID                    string `json:"id"`
	FlightNumber          string `json:"flightNumber"`
	CustomerName          string `json:"customerName,omitempty"`
	CustomerEmail         string `json:"customerEmail,omitempty"`
	CustomerPhone         string `json:"customerPhone,omitempty"`
	Seat                  string `json:"seat,omitempty"`
	NeedSpecialAssistance bool   `json:"needSpecialAssistance"`
	NeedMealService       bool   `json:"needMealService"`
	Status                string `json:"status"`
}

func toReservationResponse(res *booking.FlightReservation) reservationResponse {
	out := reservationResponse{
		ID:                    res.ID(),
		FlightNumber:          res.Flight().FlightNumber,
		CustomerName:          res.Customer().Name,
		CustomerEmail:         res.Customer().Email,
		CustomerPhone:         res.Customer().Phone,
		NeedSpecialAssistance: res.NeedSpecialAssistance(),
		NeedMealService:       res.NeedMealService(),
		Status:                string(res.Status()),
	}
	if seat, ok := res.Seat(); ok {
		out.Seat = seat.ID
	}
	return out
}

// GetFlights handles GET /api/flights
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := service.SearchQuery{
		Origin:      params.Get("origin"),
		Destination: params.Get("destination"),
		Date:        params.Get("date"),
	}
	if raw := params.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		q.MaxPrice, q.HasMaxPrice = maxPrice, true
	}
	if raw := params.Get("maxStops"); raw != "" {
		maxStops, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "maxStops must be an integer")
			return
		}
		q.MaxStops, q.HasMaxStops = maxStops, true
	}

	flights := h.bookingService.SearchFlights(r.Context(), q)
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{number}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightNumber := mux.Vars(r)["number"]
	flight, err := h.bookingService.GetFlight(r.Context(), flightNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetFlightSeats handles GET /api/flights/{number}/seats
func (h *Handler) GetFlightSeats(w http.ResponseWriter, r *http.Request) {
	flightNumber := mux.Vars(r)["number"]
	seats, err := h.bookingService.FreeSeats(r.Context(), flightNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// GetUpgradeQueue handles GET /api/flights/{number}/upgrade-queue
func (h *Handler) GetUpgradeQueue(w http.ResponseWriter, r *http.Request) {
	flightNumber := mux.Vars(r)["number"]
	queue, err := h.bookingService.UpgradeQueue(r.Context(), flightNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"queue": queue})
}

// OpenBusinessSeat handles POST /api/flights/{number}/open-business-seat
func (h *Handler) OpenBusinessSeat(w http.ResponseWriter, r *http.Request) {
	flightNumber := mux.Vars(r)["number"]

	var req seatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	upgraded, err := h.bookingService.OpenBusinessSeat(r.Context(), flightNumber, req.SeatID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"upgradedCustomer": upgraded, "seat": req.SeatID})
}

// CreateReservation handles POST /api/reservations
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.bookingService.CreateReservation(r.Context(), req.FlightNumber)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toReservationResponse(res))
}

// GetReservation handles GET /api/reservations/{id}
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.bookingService.GetReservation(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponse(res))
}

// UpdateCustomer handles PUT /api/reservations/{id}/customer
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.bookingService.SetCustomer(r.Context(), id, booking.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondReservation(w, r, id)
}

// AssignSeat handles PUT /api/reservations/{id}/seat
func (h *Handler) AssignSeat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req seatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bookingService.AssignSeat(r.Context(), id, req.SeatID); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondReservation(w, r, id)
}

// UpdateServices handles PUT /api/reservations/{id}/services
func (h *Handler) UpdateServices(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req servicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.bookingService.SetServices(r.Context(), id, req.NeedSpecialAssistance, req.NeedMealService); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondReservation(w, r, id)
}

// JoinUpgradeQueue handles POST /api/reservations/{id}/upgrade
func (h *Handler) JoinUpgradeQueue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bookingService.JoinUpgradeQueue(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondReservation(w, r, id)
}

// ConfirmReservation handles POST /api/reservations/{id}/confirm
func (h *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bookingService.ConfirmReservation(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondReservation(w, r, id)
}

func (h *Handler) respondReservation(w http.ResponseWriter, r *http.Request, id string) {
	res, err := h.bookingService.GetReservation(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponse(res))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
