package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrAuthRequired       = errors.New("token requerido")
	ErrTokenInvalid       = errors.New("token inválido o expirado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailNotVerified   = errors.New("email sin verificar")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidPlan        = errors.New("plan inválido")
	ErrTrialAlreadyUsed   = errors.New("la prueba gratuita ya fue utilizada")
	ErrTrialExpired       = errors.New("la prueba gratuita expiró")
	ErrLinkNotFound       = errors.New("enlace no encontrado")
	ErrLinkExpired        = errors.New("enlace expirado")
	ErrModuleNotPermitted = errors.New("módulo sin permiso")
)

// ValidationError indica el campo concreto que falló la validación.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AccessDeniedError decisión de entitlement negativa con su razón (ej. "Plan Expired").
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string { return "acceso denegado: " + e.Reason }

// Unwrap permite errors.Is(err, ErrForbidden).
func (e *AccessDeniedError) Unwrap() error { return ErrForbidden }
