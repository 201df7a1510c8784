package employees

import (
	"zoo-manager/core/apperror"
	"zoo-manager/core/logger"
	"zoo-manager/core/records"
	"zoo-manager/core/search"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for employees.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the employee routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/employees")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/search", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates an employee.
// @Summary Create Employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body CreateRequest true "Employee"
// @Success 201 {object} Employee
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /employees [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	employee, err := h.service.Create(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	l.Info("Employee created", zap.Int64("id", employee.ID))
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// HandleList returns every employee with the assigned animal inline.
// @Summary List Employees
// @Tags employees
// @Produce json
// @Success 200 {array} View
// @Router /employees [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	views, err := h.service.List(c.Context())
	if err != nil {
		return apperror.Respond(c, logger.WithRayID(h.service.logger, c), err)
	}
	return c.JSON(views)
}

// HandleGet returns one employee.
// @Summary Get Employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} Employee
// @Failure 404 {object} map[string]string "Not Found"
// @Router /employees/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	employee, err := h.service.Get(c.Context(), id)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(employee)
}

// HandleUpdate overwrites the fields present in the body.
// @Summary Update Employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body UpdateRequest true "Fields to change"
// @Success 200 {object} Employee
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /employees/{id} [put]
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

	employee, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(employee)
}

// HandleDelete deletes an employee.
// @Summary Delete Employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string "Message"
// @Router /employees/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := records.ParseID(c)
	if err != nil {
		return apperror.Respond(c, l, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}

// HandleSearch filters employees by equality on one field.
// @Summary Search Employees
// @Tags employees
// @Accept json
// @Produce json
// @Param query body search.Request true "Predicate (equality only)"
// @Success 200 {array} Employee
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /employees/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req search.Request
	if err := records.Bind(c, &req); err != nil {
		return apperror.Respond(c, l, err)
	}

	employees, err := h.service.Search(c.Context(), req)
	if err != nil {
		return apperror.Respond(c, l, err)
	}
	return c.JSON(employees)
}
