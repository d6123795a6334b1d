package api

import (
	"context"
	"net/http"
	"time"

	"hotelhub/internal/config"
	"hotelhub/internal/export"
	"hotelhub/internal/service"
	"hotelhub/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Server exposes the booking API over HTTP.
type Server struct {
	auth     *service.AuthService
	hotels   *service.HotelService
	bookings *service.BookingService
	exporter *export.Exporter
	session  *store.Session
	validate *validator.Validate
	logger   *zerolog.Logger
	server   *http.Server
}

func NewServer(cfg config.ServerConfig, auth *service.AuthService, hotels *service.HotelService, bookings *service.BookingService, exporter *export.Exporter, session *store.Session, logger *zerolog.Logger) *Server {
	s := &Server{
		auth:     auth,
		hotels:   hotels,
		bookings: bookings,
		exporter: exporter,
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(Logger(logger))
	r.Use(Metrics)
	r.Use(RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/me", s.handleMe)

		r.Get("/hotels", s.handleListHotels)
		r.Get("/hotels/locations", s.handleLocations)
		r.Get("/hotels/{id}", s.handleGetHotel)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Post("/bookings", s.handleCreateBooking)
			r.Get("/bookings", s.handleListBookings)
			r.Get("/bookings/{id}", s.handleGetBooking)
			r.Patch("/bookings/{id}/status", s.handleBookingStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Post("/hotels", s.handleAddHotel)
			r.Patch("/hotels/{id}", s.handleUpdateHotel)
			r.Delete("/hotels/{id}", s.handleDeleteHotel)
			r.Get("/admin/stats", s.handleStats)
			r.Post("/admin/export", s.handleExport)
		})
	})

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return s
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
