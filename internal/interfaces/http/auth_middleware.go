package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/pkg/jwt"
)

// Locals key for the authenticated actor.
const localActor = "actor"

// AuthMiddleware validates the Bearer JWT and stores the request's Actor in
// c.Locals. Role checks happen later, inside the use cases.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authentication required"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header must be: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authentication required"))
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid or expired token"))
		}
		role := entity.Role(claims.Role)
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid or expired token"))
		}
		c.Locals(localActor, entity.Actor{
			UserID:     claims.UserID,
			Role:       role,
			DistrictID: claims.DistrictID,
		})
		return c.Next()
	}
}

// GetActor returns the Actor extracted by AuthMiddleware. The zero Actor is
// returned on routes that skipped the middleware.
func GetActor(c *fiber.Ctx) entity.Actor {
	v := c.Locals(localActor)
	if v == nil {
		return entity.Actor{}
	}
	a, _ := v.(entity.Actor)
	return a
}
