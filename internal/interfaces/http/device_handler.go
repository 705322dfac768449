package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// DeviceHandler handles IT asset endpoints (protected).
type DeviceHandler struct {
	uc  *usecase.DeviceUseCase
	log *logger.Logger
}

// NewDeviceHandler builds the handler.
func NewDeviceHandler(uc *usecase.DeviceUseCase, log *logger.Logger) *DeviceHandler {
	return &DeviceHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Register a device
// @Tags         devices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeviceRequest  true  "Device data"
// @Success      200   {object}  dto.Response{data=dto.DeviceResponse}
// @Failure      409   {object}  dto.Response
// @Router       /api/devices [post]
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in dto.DeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Device registered successfully", out))
}

// Update godoc
// @Summary      Update a device
// @Tags         devices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Device id"
// @Param        body  body  dto.DeviceRequest  true  "Device data"
// @Success      200   {object}  dto.Response{data=dto.DeviceResponse}
// @Router       /api/devices/{id} [put]
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.DeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Device updated successfully", out))
}

// Delete godoc
// @Summary      Delete a device
// @Tags         devices
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Device id"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/devices/{id} [delete]
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Device deleted successfully", nil))
}

// GetByID godoc
// @Summary      Get a device
// @Tags         devices
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Device id"
// @Success      200  {object}  dto.Response{data=dto.DeviceResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/devices/{id} [get]
func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Device retrieved", out))
}

// List godoc
// @Summary      List devices in scope
// @Tags         devices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.DeviceResponse}
// @Router       /api/devices [get]
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Devices retrieved", out))
}
