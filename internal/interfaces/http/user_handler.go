package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// UserHandler maneja las peticiones HTTP de usuarios (protegido; escrituras solo admin).
type UserHandler struct {
	uc       *usecase.UserUseCase
	auth     *auth.AuthUseCase
	validate *RequestValidator
	log      *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase, validate *RequestValidator, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, auth: authUC, validate: validate, log: log}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.auth.Profile(c.Context(), GetUsername(c))
	if err != nil {
		return writeError(c, h.log, "user.profile", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "página (1-indexada)"
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return validationFailed(c, "query inválida")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, "user.list", err)
	}
	return c.JSON(out)
}

// GetByUsername godoc
// @Summary      Obtener usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "username"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{username} [get]
func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	out, err := h.uc.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return writeError(c, h.log, "user.get", err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "username, name, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, "user.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        username  path  string                 true  "username"
// @Param        body      body  dto.UpdateUserRequest  true  "name y/o password"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{username} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg := h.validate.Validate(in); msg != "" {
		return validationFailed(c, msg)
	}
	out, err := h.uc.Update(c.Context(), c.Params("username"), in)
	if err != nil {
		return writeError(c, h.log, "user.update", err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Activar / desactivar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Accept       json
// @Param        username  path  string                 true  "username"
// @Param        body      body  dto.ToggleUserRequest  true  "is_active"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/toggle/{username} [put]
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	var in dto.ToggleUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	username := c.Params("username")
	if username == GetUsername(c) && !in.IsActive {
		return validationFailed(c, "no puede desactivarse a sí mismo")
	}
	out, err := h.uc.ToggleActive(c.Context(), username, in)
	if err != nil {
		return writeError(c, h.log, "user.toggle", err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}
