package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// AuthHandler maneja registro, verificación, login y logout.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Signup godoc
// @Summary      Registrar organización y usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "firstName, lastName, email, password, organization"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Verify godoc
// @Summary      Verificar email
// @Tags         auth
// @Param        token  path  string  true  "Token de verificación"
// @Success      302
// @Router       /api/auth/verify/{token} [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	target, err := h.uc.VerifyEmail(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Redirect(target, fiber.StatusFound)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetClaims(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// ListUsers godoc
// @Summary      Usuarios de la organización
// @Description  Solo administradores. Alimenta la selección de user_id al activar planes.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext(), GetOrganizationID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Obtener usuario de la organización
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetUser(c.UserContext(), GetOrganizationID(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
