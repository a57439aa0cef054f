// Package server exposes the portfolio analytics as a web API: PNG
// charts for the time series and JSON for the performance tables and
// risk measures.
//
// Every request reloads the two source ledgers and recomputes from
// scratch; requests share no mutable state.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/etnz/etfperf"
)

// Server is the web API over one analytics configuration.
type Server struct {
	cfg etfperf.Config
	log zerolog.Logger
	app *fiber.App
}

// New builds the API server with its routes and middleware.
func New(cfg etfperf.Config, log zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "etfperf",
		DisableStartupMessage: true,
	})
	s := &Server{cfg: cfg, log: log, app: app}

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(s.logRequests)

	app.Get("/", s.handleRoot)
	app.Get("/etf-prices", s.handlePrices)
	app.Get("/positions-value-per-etf", s.handlePositionsValuePerETF)
	app.Get("/positions-value", s.handlePositionsValue)
	app.Get("/cash-flow", s.handleCashFlow)
	app.Get("/combined-cash-flow-positions-value", s.handleCombined)
	app.Get("/monthly-portfolio-performance", s.handlePerformance(etfperf.Monthly))
	app.Get("/annually-portfolio-performance", s.handlePerformance(etfperf.Yearly))
	app.Get("/risk-measures", s.handleRiskMeasures)

	return s
}

// Listen serves the API on the configured address until it fails.
func (s *Server) Listen() error {
	s.log.Info().Str("addr", s.cfg.Listen).Msg("serving portfolio analytics")
	return s.app.Listen(s.cfg.Listen)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) logRequests(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Set("X-Request-Id", id)
	start := time.Now()
	err := c.Next()
	s.log.Info().
		Str("request_id", id).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	return err
}

// fail maps the analytics error taxonomy onto HTTP status codes.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	var invalid etfperf.InvalidArgumentError
	var missing etfperf.MissingPriceError
	var misaligned etfperf.AlignmentError
	var data etfperf.DataError

	status := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &invalid):
		status = fiber.StatusBadRequest
	case errors.As(err, &missing), errors.As(err, &misaligned), errors.As(err, &data):
		status = fiber.StatusUnprocessableEntity
	}
	if status == fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
