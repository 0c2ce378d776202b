package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/srgjo27/stay_booking/internal/core/services"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *logging.Logger
	Calendar       *CalendarHandler
	Booking        *BookingHandler
	Login          *LoginHandler
	Auth           *services.AuthService
	RequireLogin   bool
	MetricsHandler http.Handler
}

// NewRouter creates a chi router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Get("/login", cfg.Login.Show)
	r.Post("/login", cfg.Login.Submit)

	r.Group(func(site chi.Router) {
		if cfg.RequireLogin && cfg.Auth != nil {
			site.Use(RequireLogin(cfg.Auth, cfg.Logger))
		}

		site.Get("/", cfg.Calendar.Show)
		site.Get("/calendar/days/{day}", cfg.Calendar.SelectDay)

		site.Get("/booking", cfg.Booking.ShowForm)
		site.Post("/booking", cfg.Booking.SubmitForm)
		site.Post("/api/bookings/validate", cfg.Booking.Validate)
	})

	return r
}
