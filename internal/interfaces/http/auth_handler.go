package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// AuthHandler maneja login y cambio de contraseña.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *RequestValidator
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, validate *RequestValidator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validate, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, "auth.login", err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "old_password, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	if err := h.uc.ChangePassword(c.Context(), GetUsername(c), in); err != nil {
		return writeError(c, h.log, "auth.change_password", err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
