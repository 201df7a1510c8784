package events

import (
	"zoo-manager/core/apperror"
	"zoo-manager/core/logger"
	"zoo-manager/core/records"
	"zoo-manager/core/search"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for events.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the event routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/events")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/search", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an event.
// @Summary Create Event
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateRequest true "Event"
// @Success 201 {object} Event
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /events [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	event, err := h.service.Create(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	l.Info("Event created", zap.Int64("id", event.ID))
	return c.Status(fiber.StatusCreated).JSON(event)
}

// HandleList returns every event with the featured animal inline.
// @Summary List Events
// @Tags events
// @Produce json
// @Success 200 {array} View
// @Router /events [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	views, err := h.service.List(c.Context())
	if err != nil {
		return apperror.Respond(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(views)
}

// HandleGet returns one event.
// @Summary Get Event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string "Not Found"
// @Router /events/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	event, err := h.service.Get(c.Context(), id)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(event)
}

// HandleUpdate overwrites the fields present in the body.
// @Summary Update Event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body UpdateRequest true "Fields to change"
// @Success 200 {object} Event
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /events/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	var req UpdateRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	event, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(event)
}

// HandleDelete deletes an event.
// @Summary Delete Event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string "Message"
// @Router /events/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

// HandleSearch filters events by equality on one field.
// @Summary Search Events
// @Tags events
// @Accept json
// @Produce json
// @Param query body search.Request true "Predicate (equality only)"
// @Success 200 {array} Event
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /events/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req search.Request
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	events, err := h.service.Search(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(events)
}
