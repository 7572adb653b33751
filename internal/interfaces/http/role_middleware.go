package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
)

// RequireRole deja pasar solo a las sesiones con alguno de los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
//   - 401 si el token no trae rol (token emitido antes de que existiera el claim).
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized(c, CodeTokenInvalid, msgTokenInvalid)
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    CodeForbidden,
				Message: "rol sin permiso para esta operación",
			})
		}
		return c.Next()
	}
}

// GetRole devuelve el rol de la sesión ("" sin sesión o sin claim).
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
