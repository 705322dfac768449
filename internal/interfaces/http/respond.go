package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// fail maps a use-case error to its HTTP status. The domain taxonomy is
// translated in this one place; anything outside it is treated as a storage
// failure, logged with the real cause and answered with a generic message.
func fail(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case domain.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Resource not found"))
	case errors.Is(err, domain.ErrUnauthorized):
		log.Warn().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("authentication rejected")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid email or password"))
	case errors.Is(err, domain.ErrForbidden):
		log.Warn().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("reason", forbiddenMessage(err)).
			Msg("access denied")
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(forbiddenMessage(err)))
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("An unexpected error occurred"))
	}
}

// forbiddenMessage strips the sentinel prefix so clients see only the reason.
func forbiddenMessage(err error) string {
	prefix := domain.ErrForbidden.Error() + ": "
	return strings.TrimPrefix(err.Error(), prefix)
}

// badBody answers a malformed request body.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.Validationf("Invalid id parameter")
	}
	return int64(id), nil
}
