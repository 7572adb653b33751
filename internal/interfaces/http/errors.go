package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// Códigos de error devueltos al cliente.
const (
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidBody        = "INVALID_BODY"
	CodeValidation         = "VALIDATION"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeConflict           = "CONFLICT"
	CodeInvalidPlan        = "INVALID_PLAN"
	CodeTrialAlreadyUsed   = "FREE_TRIAL_ALREADY_USED"
	CodeTrialExpired       = "FREE_TRIAL_EXPIRED"
	CodeLinkNotFound       = "LINK_NOT_FOUND"
	CodeLinkExpired        = "LINK_EXPIRED"
	CodeModuleNotPermitted = "MODULE_NOT_PERMITTED"
	CodeInternal           = "INTERNAL"
)

// Mensajes fijos del middleware de autenticación.
const (
	msgTokenRequired = "Token required"
	msgTokenInvalid  = "Invalid or expired token"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // vacío = err.Error()
}

// El orden importa: los errores más específicos primero.
var errorMappings = []errorMapping{
	{domain.ErrAuthRequired, fiber.StatusUnauthorized, CodeAuthRequired, msgTokenRequired},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized, CodeTokenInvalid, msgTokenInvalid},
	{domain.ErrEmailNotVerified, fiber.StatusUnauthorized, CodeEmailNotVerified, "Please verify email"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, CodeUnauthorized, ""},
	{domain.ErrTrialExpired, fiber.StatusForbidden, CodeTrialExpired, ""},
	{domain.ErrTrialAlreadyUsed, fiber.StatusForbidden, CodeTrialAlreadyUsed, ""},
	{domain.ErrModuleNotPermitted, fiber.StatusForbidden, CodeModuleNotPermitted, ""},
	{domain.ErrForbidden, fiber.StatusForbidden, CodeForbidden, ""},
	{domain.ErrInvalidPlan, fiber.StatusBadRequest, CodeInvalidPlan, ""},
	{domain.ErrUserNotFound, fiber.StatusNotFound, CodeUserNotFound, ""},
	{domain.ErrLinkNotFound, fiber.StatusNotFound, CodeLinkNotFound, ""},
	{domain.ErrLinkExpired, fiber.StatusUnauthorized, CodeLinkExpired, ""},
	{domain.ErrNotFound, fiber.StatusNotFound, CodeNotFound, ""},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, CodeEmailExists, ""},
	{domain.ErrConflict, fiber.StatusConflict, CodeConflict, ""},
}

// writeError traduce un error de aplicación a dto.ErrorResponse. Los errores no mapeados
// se registran y salen como 500 con un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: verr.Error()})
	}
	var denied *domain.AccessDeniedError
	if errors.As(err, &denied) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: denied.Reason})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = m.target.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno del servidor"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}
