package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// activeChecker contrato mínimo para saber si el usuario del token sigue activo.
// Lo implementa *usecase.UserUseCase.
type activeChecker interface {
	IsActive(ctx context.Context, username string) (bool, error)
}

// RequireActiveUser rechaza tokens de usuarios desactivados o borrados después del login.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUsername).
//
// Comportamiento:
//   - 401 Unauthorized → no hay username en el contexto.
//   - 403 Forbidden → el usuario ya no existe o está inactivo.
//   - 503 Service Unavailable → fallo al consultar el store.
func RequireActiveUser(checker activeChecker, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := GetUsername(c)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado en el token",
			})
		}

		active, err := checker.IsActive(c.Context(), username)
		if err != nil {
			log.Error().Err(err).Str("username", username).Msg("verificar usuario activo")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "USER_CHECK_FAILED",
				Message: "no se pudo verificar el usuario, intente más tarde",
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "USER_INACTIVE",
				Message: "el usuario está desactivado",
			})
		}
		return c.Next()
	}
}

// RequireAdmin permite el paso solo a administradores. Va después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsername(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol administrador"})
		}
		return c.Next()
	}
}
