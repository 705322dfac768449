package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/report"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// SessionHandler handles training session endpoints (protected), including
// the downloadable PDF report.
type SessionHandler struct {
	uc     *usecase.SessionUseCase
	report *report.SessionReportUseCase
	log    *logger.Logger
}

// NewSessionHandler builds the handler.
func NewSessionHandler(uc *usecase.SessionUseCase, rep *report.SessionReportUseCase, log *logger.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, report: rep, log: log}
}

// Create godoc
// @Summary      Create a training session
// @Tags         sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  true  "Session data"
// @Success      200   {object}  dto.Response{data=dto.SessionResponse}
// @Failure      403   {object}  dto.Response
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Training session created successfully", out))
}

// Update godoc
// @Summary      Update a training session
// @Tags         sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Session id"
// @Param        body  body  dto.SessionRequest  true  "Session data"
// @Success      200   {object}  dto.Response{data=dto.SessionResponse}
// @Router       /api/sessions/{id} [put]
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.SessionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Training session updated successfully", out))
}

// Delete godoc
// @Summary      Delete a training session and its trainees
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Session id"
// @Success      200  {object}  dto.Response
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Training session deleted successfully", nil))
}

// GetByID godoc
// @Summary      Get a training session
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Session id"
// @Success      200  {object}  dto.Response{data=dto.SessionResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Training session retrieved", out))
}

// List godoc
// @Summary      List training sessions in scope
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.SessionResponse}
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Training sessions retrieved", out))
}

// Report godoc
// @Summary      Download the session report as PDF
// @Tags         sessions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "Session id"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.Response
// @Router       /api/sessions/{id}/report [get]
func (h *SessionHandler) Report(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	pdfBytes, err := h.report.Generate(c.Context(), GetActor(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="session_%d_report.pdf"`, id))
	return c.Send(pdfBytes)
}
