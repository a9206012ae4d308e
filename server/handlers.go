package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/meikuraledutech/pipeline"
)

// HeaderReportID carries the ID of the stored report on parse responses.
const HeaderReportID = "X-Report-ID"

func (s *Server) handleParse(c fiber.Ctx) error {
	raw, source := extractPayload(c)
	res := pipeline.Parse(raw)

	s.logger.Debug("pipeline parsed",
		"source", source,
		"nodes", res.NumNodes,
		"edges", res.NumEdges,
		"is_dag", res.IsDAG,
	)
	if id := s.record(c, source, res); id != "" {
		c.Set(HeaderReportID, id)
	}

	return c.JSON(res)
}

// record stores a report and returns its ID, or "" when nothing was stored.
// The store assigns the ID; client supplied request IDs are never used as keys.
// Failures are logged only; the parse response never depends on storage.
func (s *Server) record(c fiber.Ctx, source string, res pipeline.Result) string {
	if s.store == nil {
		return ""
	}
	id, err := s.store.SaveReport(c.Context(), pipeline.NewReport("", source, res))
	if err != nil {
		s.logger.Warn("report not saved", "source", source, "err", err)
		return ""
	}
	return id
}

func (s *Server) handleGetReport(c fiber.Ctx) error {
	if s.store == nil {
		return c.Status(404).JSON(fiber.Map{"error": pipeline.ErrStoreDisabled.Error()})
	}
	r, err := s.store.GetReport(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if r == nil {
		return c.Status(404).JSON(fiber.Map{"error": "report not found"})
	}
	return c.JSON(r)
}

func (s *Server) handleListReports(c fiber.Ctx) error {
	if s.store == nil {
		return c.Status(404).JSON(fiber.Map{"error": pipeline.ErrStoreDisabled.Error()})
	}
	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "invalid limit"})
		}
		limit = n
	}
	reports, err := s.store.ListReports(c.Context(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reports)
}

func (s *Server) handleDeleteReport(c fiber.Ctx) error {
	if s.store == nil {
		return c.Status(404).JSON(fiber.Map{"error": pipeline.ErrStoreDisabled.Error()})
	}
	err := s.store.DeleteReport(c.Context(), c.Params("id"))
	if errors.Is(err, pipeline.ErrReportNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "report not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(204)
}
