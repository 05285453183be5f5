package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	session *service.Session
}

func NewDashboardHandler(s *service.Session) *DashboardHandler {
	return &DashboardHandler{session: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.session.Dashboard())
}

// GetTopPerformers returns the best selling products
// Query params: limit (default 5)
func (h *DashboardHandler) GetTopPerformers(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DashboardTopN)))
	if err != nil || limit <= 0 {
		limit = service.DashboardTopN
	}
	return c.JSON(fiber.Map{
		"limit": limit,
		"data":  h.session.TopPerformers(limit),
	})
}

// GetReport returns the aggregated report
// Query params: scope (daily|monthly|all, default daily), date (YYYY-MM-DD, default today)
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.report(c)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(report)
}

// ExportReport sends the report as a CSV download
func (h *DashboardHandler) ExportReport(c *fiber.Ctx) error {
	report, err := h.report(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := service.ExportCSV(&buf, report, now); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export report"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, service.ExportFileName(report.Scope, now)))
	return c.Send(buf.Bytes())
}

// report parses scope and date (YYYY-MM-DD in local time) and builds the report
func (h *DashboardHandler) report(c *fiber.Ctx) (model.ReportResult, error) {
	scope, err := service.ParseScope(c.Query("scope"))
	if err != nil {
		return model.ReportResult{}, err
	}

	ref := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			return model.ReportResult{}, errInvalidDate
		}
		ref = parsed
	}

	return h.session.Report(scope, ref)
}
