package router

import (
	"net/http"

	"github.com/GargSheetal/travel-agency-app/internal/handlers"
	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router.
func SetupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}/seats", h.GetFlightSeats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}/upgrade-queue", h.GetUpgradeQueue).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{number}/open-business-seat", h.OpenBusinessSeat).Methods(http.MethodPost, http.MethodOptions)

	// Reservations
	api.HandleFunc("/reservations", h.CreateReservation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reservations/{id}", h.GetReservation).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/customer", h.UpdateCustomer).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/seat", h.AssignSeat).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/services", h.UpdateServices).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/upgrade", h.JoinUpgradeQueue).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reservations/{id}/confirm", h.ConfirmReservation).Methods(http.MethodPost, http.MethodOptions)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
