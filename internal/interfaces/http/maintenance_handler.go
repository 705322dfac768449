package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// MaintenanceHandler handles maintenance record endpoints (protected).
type MaintenanceHandler struct {
	uc  *usecase.MaintenanceUseCase
	log *logger.Logger
}

// NewMaintenanceHandler builds the handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase, log *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Log a maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaintenanceRequest  true  "Maintenance data"
// @Success      200   {object}  dto.Response{data=dto.MaintenanceResponse}
// @Failure      403   {object}  dto.Response
// @Router       /api/maintenances [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.MaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Maintenance record created successfully", out))
}

// Update godoc
// @Summary      Update a maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Record id"
// @Param        body  body  dto.MaintenanceRequest  true  "Maintenance data"
// @Success      200   {object}  dto.Response{data=dto.MaintenanceResponse}
// @Router       /api/maintenances/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.MaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Maintenance record updated successfully", out))
}

// Delete godoc
// @Summary      Delete a maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Record id"
// @Success      200  {object}  dto.Response
// @Router       /api/maintenances/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Maintenance record deleted successfully", nil))
}

// GetByID godoc
// @Summary      Get a maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Record id"
// @Success      200  {object}  dto.Response{data=dto.MaintenanceResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/maintenances/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Maintenance record retrieved", out))
}

// List godoc
// @Summary      List maintenance records in scope
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.MaintenanceResponse}
// @Router       /api/maintenances [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Maintenance records retrieved", out))
}
