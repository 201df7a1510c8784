package souvenirs

import (
	"zoo-manager/core/apperror"
	"zoo-manager/core/logger"
	"zoo-manager/core/records"
	"zoo-manager/core/search"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for souvenirs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the souvenir routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/souvenirs")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/search", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an souvenir.
// @Summary Create Souvenir
// @Tags souvenirs
// @Accept json
// @Produce json
// @Param souvenir body CreateRequest true "Souvenir"
// @Success 201 {object} Souvenir
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /souvenirs [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	souvenir, err := h.service.Create(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	l.Info("Souvenir created", zap.Int64("id", souvenir.ID))
	return c.Status(fiber.StatusCreated).JSON(souvenir)
}

// HandleList returns every souvenir.
// @Summary List Souvenirs
// @Tags souvenirs
// @Produce json
// @Success 200 {array} Souvenir
// @Router /souvenirs [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		return apperror.Respond(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(items)
}

// HandleGet returns one souvenir.
// @Summary Get Souvenir
// @Tags souvenirs
// @Produce json
// @Param id path int true "Souvenir ID"
// @Success 200 {object} Souvenir
// @Failure 404 {object} map[string]string "Not Found"
// @Router /souvenirs/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	souvenir, err := h.service.Get(c.Context(), id)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(souvenir)
}

// HandleUpdate overwrites the fields present in the body.
// @Summary Update Souvenir
// @Tags souvenirs
// @Accept json
// @Produce json
// @Param id path int true "Souvenir ID"
// @Param souvenir body UpdateRequest true "Fields to change"
// @Success 200 {object} Souvenir
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /souvenirs/{id} [put]
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

	souvenir, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(souvenir)
}

// HandleDelete deletes an souvenir.
// @Summary Delete Souvenir
// @Tags souvenirs
// @Produce json
// @Param id path int true "Souvenir ID"
// @Success 200 {object} map[string]string "Message"
// @Router /souvenirs/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Souvenir deleted"})
}

// HandleSearch filters souvenirs on one field with =, >, <, >= or <=.
// @Summary Search Souvenirs
// @Tags souvenirs
// @Accept json
// @Produce json
// @Param query body search.Request true "Predicate"
// @Success 200 {array} Souvenir
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /souvenirs/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req search.Request
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	souvenirs, err := h.service.Search(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(souvenirs)
}
