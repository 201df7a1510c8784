package animals

import (
	"zoo-manager/core/apperror"
	"zoo-manager/core/logger"
	"zoo-manager/core/records"
	"zoo-manager/core/search"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for animals.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the animal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/animals")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/search", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Put("/:id/health", h.HandleSetHealth)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an animal.
// @Summary Create Animal
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body CreateRequest true "Animal"
// @Success 201 {object} Animal
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /animals [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	animal, err := h.service.Create(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	l.Info("Animal created", zap.Int64("id", animal.ID))
	return c.Status(fiber.StatusCreated).JSON(animal)
}

// HandleList returns every animal.
// @Summary List Animals
// @Tags animals
// @Produce json
// @Success 200 {array} Animal
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /animals [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	animals, err := h.service.List(c.Context())
	if err != nil {
		return apperror.Respond(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(animals)
}

// HandleGet returns one animal.
// @Summary Get Animal
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} Animal
// @Failure 404 {object} map[string]string "Not Found"
// @Router /animals/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	animal, err := h.service.Get(c.Context(), id)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(animal)
}

// HandleUpdate merges the request onto the stored animal.
// @Summary Update Animal
// @Description Omitted or empty fields keep their stored value.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param animal body UpdateRequest true "Fields to change"
// @Success 200 {object} Animal
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /animals/{id} [put]
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

	animal, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(animal)
}

// HandleSetHealth updates the health status only.
// @Summary Set Animal Health
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param health body HealthRequest true "Health status"
// @Success 200 {object} Animal
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /animals/{id}/health [put]
func (h *Handler) HandleSetHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	var req HealthRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	animal, err := h.service.SetHealth(c.Context(), id, req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	l.Info("Animal health updated", zap.Int64("id", id), zap.String("health_status", animal.HealthStatus))
	return c.JSON(animal)
}

// HandleDelete deletes an animal. Unknown identifiers still report success.
// @Summary Delete Animal
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} map[string]string "Message"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /animals/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Animal deleted"})
}

// HandleSearch filters animals on one field.
// @Summary Search Animals
// @Description Supports the operators =, >, <, >= and <=. Unknown fields match nothing.
// @Tags animals
// @Accept json
// @Produce json
// @Param query body search.Request true "Predicate"
// @Success 200 {array} Animal
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /animals/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req search.Request
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	animals, err := h.service.Search(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(animals)
}
