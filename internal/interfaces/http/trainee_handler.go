package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// TraineeHandler handles trainee endpoints (protected). Access always runs
// through the owning session's district.
type TraineeHandler struct {
	uc  *usecase.TraineeUseCase
	log *logger.Logger
}

// NewTraineeHandler builds the handler.
func NewTraineeHandler(uc *usecase.TraineeUseCase, log *logger.Logger) *TraineeHandler {
	return &TraineeHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Register a trainee
// @Tags         trainees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TraineeRequest  true  "Trainee data"
// @Success      200   {object}  dto.Response{data=dto.TraineeResponse}
// @Failure      403   {object}  dto.Response
// @Router       /api/trainees [post]
func (h *TraineeHandler) Create(c *fiber.Ctx) error {
	var in dto.TraineeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainee registered successfully", out))
}

// Update godoc
// @Summary      Update a trainee
// @Tags         trainees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Trainee id"
// @Param        body  body  dto.TraineeRequest  true  "Trainee data"
// @Success      200   {object}  dto.Response{data=dto.TraineeResponse}
// @Router       /api/trainees/{id} [put]
func (h *TraineeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.TraineeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainee updated successfully", out))
}

// Delete godoc
// @Summary      Delete a trainee
// @Tags         trainees
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Trainee id"
// @Success      200  {object}  dto.Response
// @Router       /api/trainees/{id} [delete]
func (h *TraineeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainee deleted successfully", nil))
}

// GetByID godoc
// @Summary      Get a trainee
// @Tags         trainees
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Trainee id"
// @Success      200  {object}  dto.Response{data=dto.TraineeResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/trainees/{id} [get]
func (h *TraineeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainee retrieved", out))
}

// List godoc
// @Summary      List trainees in scope
// @Tags         trainees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.TraineeResponse}
// @Router       /api/trainees [get]
func (h *TraineeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainees retrieved", out))
}

// ListBySession godoc
// @Summary      List trainees of one session
// @Tags         trainees
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Session id"
// @Success      200  {object}  dto.Response{data=[]dto.TraineeResponse}
// @Router       /api/sessions/{id}/trainees [get]
func (h *TraineeHandler) ListBySession(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.ListBySession(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Trainees retrieved", out))
}
