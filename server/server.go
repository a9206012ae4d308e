// Package server exposes the pipeline validator over HTTP using fiber.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/meikuraledutech/pipeline"
	"github.com/meikuraledutech/pipeline/config"
)

// Server wires the HTTP routes to the validator and an optional report store.
type Server struct {
	app    *fiber.App
	store  pipeline.ReportStore
	logger *log.Logger
}

// New builds the fiber app. store may be nil, in which case reports are
// neither recorded nor served.
func New(cfg config.Config, store pipeline.ReportStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{store: store, logger: logger}

	s.app = fiber.New(fiber.Config{
		AppName:      "pipeline",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: s.handleError,
	})

	s.app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	s.app.Use(accessLog(logger))
	s.app.Use(recoverer.New())
	if len(cfg.AllowedOrigins) > 0 {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
			AllowMethods: []string{
				fiber.MethodGet,
				fiber.MethodPost,
				fiber.MethodHead,
				fiber.MethodDelete,
				fiber.MethodOptions,
			},
			ExposeHeaders: []string{fiber.HeaderXRequestID, HeaderReportID},
		}))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	// ── Health ────────────────────────────────────────────────────────
	s.app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"Ping": "Pong"})
	})

	// ── Parse ─────────────────────────────────────────────────────────
	s.app.Get("/pipelines/parse", s.handleParse)
	s.app.Post("/pipelines/parse", s.handleParse)

	// ── Reports ───────────────────────────────────────────────────────
	s.app.Get("/reports", s.handleListReports)
	s.app.Get("/reports/:id", s.handleGetReport)
	s.app.Delete("/reports/:id", s.handleDeleteReport)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", "addr", addr, "reports", s.store != nil)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := 500
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= 500 {
		s.logger.Error("request failed", "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// accessLog logs one line per request. Chain errors are rendered through
// the app's error handler first so the logged status is the one sent.
func accessLog(logger *log.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(500)
			}
		}
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"id", requestid.FromContext(c),
			"took", time.Since(start).Round(time.Microsecond),
		)
		return nil
	}
}
