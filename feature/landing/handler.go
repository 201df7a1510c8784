package landing

import (
	"errors"

	"zoo-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers GET / and, for a local directory, its static assets.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	if !h.service.FromStorage() {
		app.Static("/", h.service.publicDir)
	}
}

// HandleIndex returns the landing page.
// @Summary Landing Page
// @Tags landing
// @Produce html
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} map[string]string "Not Found"
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	data, err := h.service.Index(c.Context())
	if errors.Is(err, ErrNoIndex) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to load landing page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(data)
}
