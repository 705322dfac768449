package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// CategoryHandler handles training category endpoints (protected).
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Create a training category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Category data"
// @Success      200   {object}  dto.Response{data=dto.CategoryResponse}
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Category created successfully", out))
}

// Update godoc
// @Summary      Update a training category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Category id"
// @Param        body  body  dto.CategoryRequest  true  "Category data"
// @Success      200   {object}  dto.Response{data=dto.CategoryResponse}
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Category updated successfully", out))
}

// Delete godoc
// @Summary      Delete a training category
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Category id"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Category deleted successfully", nil))
}

// List godoc
// @Summary      List training categories
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Categories retrieved", out))
}
