package http

import (
	"net/http"

	"facility-booking/internal/delivery/http/handler"
	"facility-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	bookingHandler    *handler.BookingHandler
	sessionHandler    *handler.SessionHandler
	auditLogHandler   *handler.AuditLogHandler
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	sessionHandler *handler.SessionHandler,
	auditLogHandler *handler.AuditLogHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		bookingHandler:    bookingHandler,
		sessionHandler:    sessionHandler,
		auditLogHandler:   auditLogHandler,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything below may be anonymous; the viewer is resolved when present
	app := api.NewRoute().Subrouter()
	app.Use(r.sessionMiddleware.Resolve)

	app.HandleFunc("/catalog", r.bookingHandler.GetCatalog).Methods(http.MethodGet)

	// Session handoff from the host app
	app.HandleFunc("/session", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	app.HandleFunc("/session", r.sessionHandler.GetCurrentViewer).Methods(http.MethodGet)
	app.Handle("/session", middleware.RequireSession(http.HandlerFunc(r.sessionHandler.EndSession))).Methods(http.MethodDelete)

	// Bookings
	app.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	app.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	app.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	app.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	app.HandleFunc("/bookings/{id}/status", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPatch)
	app.HandleFunc("/bookings/{id}/history", r.auditLogHandler.GetBookingHistory).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
