package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// DashboardHandler serves the scoped landing-page summary (protected).
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Dashboard summary for the caller's scope
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.DashboardResponse}
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetActor(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.OK("Dashboard summary retrieved", out))
}
