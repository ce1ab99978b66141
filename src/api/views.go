package api

import (
	"net/http"
	"time"

	"cleartrack/src/api/controllers"
	handlers "cleartrack/src/api/handlers"
	"cleartrack/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(cfg *config.Config, controller *controllers.Controller, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handlers.NewHandler(controller, logger),
	}
	server.InitRoutes(cfg)
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(cfg *config.Config) {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Service.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	s.Router.Use(corsMiddleware.Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/holdings", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllHoldings)
		r.Post("/", s.Handler.CreateHolding)
		r.Delete("/{id}", s.Handler.DeleteHolding)
	})

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/summary", s.Handler.GetPortfolioSummary)
		r.Get("/history", s.Handler.GetPortfolioHistory)
	})

	s.Router.Route("/api/prices", func(r chi.Router) {
		r.Get("/current/{ticker}", s.Handler.GetCurrentPrice)
		r.Post("/snapshot", s.Handler.TriggerSnapshot)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		Handler:      server,
	}
	return httpServer
}
