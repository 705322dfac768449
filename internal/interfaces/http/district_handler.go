package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// DistrictHandler handles the Zone/Woreda hierarchy endpoints (protected).
type DistrictHandler struct {
	uc  *usecase.DistrictUseCase
	log *logger.Logger
}

// NewDistrictHandler builds the handler.
func NewDistrictHandler(uc *usecase.DistrictUseCase, log *logger.Logger) *DistrictHandler {
	return &DistrictHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Create a district
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistrictRequest  true  "District data"
// @Success      200   {object}  dto.Response{data=dto.DistrictResponse}
// @Failure      400   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/districts [post]
func (h *DistrictHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistrictRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("District created successfully", out))
}

// Update godoc
// @Summary      Update a district
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "District id"
// @Param        body  body  dto.UpdateDistrictRequest  true  "District data"
// @Success      200   {object}  dto.Response{data=dto.DistrictResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/districts/{id} [put]
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.UpdateDistrictRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("District updated successfully", out))
}

// Delete godoc
// @Summary      Delete a district
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "District id"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/districts/{id} [delete]
func (h *DistrictHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("District deleted successfully", nil))
}

// GetByID godoc
// @Summary      Get a district
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "District id"
// @Success      200  {object}  dto.Response{data=dto.DistrictResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/districts/{id} [get]
func (h *DistrictHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("District retrieved", out))
}

// List godoc
// @Summary      List districts
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.DistrictResponse}
// @Router       /api/districts [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Districts retrieved", out))
}

// ListZones godoc
// @Summary      List zones (parent picker)
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.DistrictResponse}
// @Router       /api/districts/zones [get]
func (h *DistrictHandler) ListZones(c *fiber.Ctx) error {
	out, err := h.uc.ListZones(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Zones retrieved", out))
}
