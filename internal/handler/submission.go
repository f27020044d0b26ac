package handler

import (
	"fmt"
	"time"

	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/dto"
	"starter-pack-quiz/internal/logger"
	"starter-pack-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmissionHandler handles quiz submission and admin read endpoints.
type SubmissionHandler struct {
	service   service.SubmissionService
	version   string
	startedAt time.Time
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(svc service.SubmissionService, version string) *SubmissionHandler {
	return &SubmissionHandler{
		service:   svc,
		version:   version,
		startedAt: time.Now(),
	}
}

// Submit handles POST /api/submit
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}

	result, err := h.service.Submit(c.Context(), &req, c.IP())
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Health handles GET /api/health
func (h *SubmissionHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    fmt.Sprintf("%d seconds", int(time.Since(h.startedAt).Seconds())),
		Version:   h.version,
	})
}

// Stats handles GET /api/stats
func (h *SubmissionHandler) Stats(c *fiber.Ctx) error {
	count, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}

	logger.Get().Info("Stats accessed",
		zap.Int("total", count),
		zap.String("ip", c.IP()),
	)
	return c.JSON(dto.StatsResponse{
		Success:        true,
		TotalResponses: count,
	})
}

// Export handles GET /api/export
func (h *SubmissionHandler) Export(c *fiber.Ctx) error {
	buf, rows, err := h.service.Export(c.Context())
	if err != nil {
		return err
	}
	if buf == nil {
		return c.JSON(dto.ErrorResponse{
			Success: false,
			Message: "No responses to export yet",
		})
	}

	logger.Get().Info("Export generated",
		zap.Int("rows", rows),
		zap.String("ip", c.IP()),
	)

	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename=responses_export.xlsx`)
	return c.Send(buf.Bytes())
}
