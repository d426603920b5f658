package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muzikology/Live2Share/internal/core/port"
)

const apiPrefix = "/api/v1"

type ServerConfig struct {
	Port           string
	ServiceName    string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает все маршруты. Отдельно от NewServer, чтобы тесты работали через httptest.
func NewRouter(cfg ServerConfig, realty *RealtyHandler, student *StudentHandler, events *EventsHandler, baseLogger port.LoggerPort) (http.Handler, error) {
	registry := prometheus.NewRegistry()
	metrics, err := NewHTTPMetrics(cfg.ServiceName, registry)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer, metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route(apiPrefix, func(r chi.Router) {
		r.Route("/realty", func(r chi.Router) {
			r.Post("/users", realty.RegisterUser)
			r.Get("/users/{id}", realty.GetUser)
			r.Get("/users/{id}/properties", realty.GetUserProperties)

			r.Get("/properties", realty.ListProperties)
			r.Post("/properties", realty.CreateProperty)
			r.Get("/properties/{id}", realty.GetProperty)
			r.Put("/properties/{id}", realty.UpdateProperty)
			r.Delete("/properties/{id}", realty.DeleteProperty)
			r.Get("/properties/{id}/inquiries", realty.GetPropertyInquiries)
			r.Get("/properties/{id}/mortgage", realty.GetPropertyMortgage)

			r.Post("/inquiries", realty.CreateInquiry)
			r.Get("/search/suggestions", realty.SearchSuggestions)
		})

		r.Route("/student", func(r chi.Router) {
			r.Post("/users", student.RegisterStudent)
			r.Get("/users/{id}", student.GetStudent)
			r.Get("/users/{id}/applications", student.GetUserApplications)
			r.Get("/users/{id}/accommodations", student.GetLandlordAccommodations)

			r.Get("/accommodations", student.ListAccommodations)
			r.Post("/accommodations", student.CreateAccommodation)
			r.Get("/accommodations/{id}", student.GetAccommodation)
			r.Put("/accommodations/{id}", student.UpdateAccommodation)
			r.Delete("/accommodations/{id}", student.DeleteAccommodation)
			r.Get("/accommodations/{id}/roommates", student.GetRoommates)
			r.Get("/accommodations/{id}/applications", student.GetAccommodationApplications)
			r.Get("/accommodations/{id}/rental-agreement", student.GetRentalAgreement)
			r.Get("/accommodations/{id}/rent-split", student.GetRentSplit)

			r.Post("/roommates", student.CreateRoommate)
			r.Post("/applications", student.CreateApplication)
			r.Patch("/applications/{id}/status", student.UpdateApplicationStatus)
			r.Post("/rental-agreements", student.CreateRentalAgreement)
			r.Get("/search/suggestions", student.SearchSuggestions)
		})

		r.Get("/events/subscribe", events.Subscribe)
	})

	return r, nil
}

func NewServer(cfg ServerConfig, handler http.Handler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server", nil)
	return s.httpServer.Shutdown(ctx)
}
