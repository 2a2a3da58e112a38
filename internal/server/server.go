// Package server assembles the fiber application: route registration and the
// per-route placement of the authentication gate. The auth and repository
// packages carry the actual contracts; everything here is plumbing between
// parsed request fields and serialized responses.
package server

import (
	"github.com/gofiber/fiber/v2"

	"covidportal/internal/auth"
	"covidportal/internal/logging"
	"covidportal/internal/repository"
)

// Server is the HTTP surface of the portal.
type Server struct {
	app    *fiber.App
	logger logging.Logger
}

// New builds the fiber application and registers all routes. The stats and
// details routes intentionally bypass the gate, an explicit per-route
// exception rather than a default.
func New(authenticator auth.Authenticator, validator auth.TokenValidator, repo repository.Manager, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefault()
	}

	app := fiber.New(fiber.Config{
		AppName:               "covid-portal",
		DisableStartupMessage: true,
	})

	h := NewHandlers(authenticator, repo, logger)
	protected := auth.Protected(validator, logger)

	app.Post("/login", h.Login)

	app.Get("/states/:stateId/stats", h.StateStats)
	app.Get("/districts/:districtId/details", h.DistrictDetails)

	app.Get("/states", protected, h.ListStates)
	app.Get("/states/:stateId", protected, h.GetState)
	app.Post("/districts", protected, h.CreateDistrict)
	app.Get("/districts/:districtId", protected, h.GetDistrict)
	app.Put("/districts/:districtId", protected, h.UpdateDistrict)
	app.Delete("/districts/:districtId", protected, h.DeleteDistrict)

	return &Server{app: app, logger: logger}
}

// App exposes the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on addr.
func (s *Server) Listen(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
