package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// Locals keys para los claims de sesión en Fiber.
const (
	LocalClaims         = "claims"
	LocalUserID         = "user_id"
	LocalOrganizationID = "organization_id"
	LocalRole           = "role"
)

// AuthMiddleware valida el Bearer Token de sesión y carga los claims en c.Locals.
// Con revoker != nil rechaza los tokens revocados por logout.
func AuthMiddleware(codec *jwt.Codec, revoker auth.TokenRevoker, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, CodeAuthRequired, msgTokenRequired)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, CodeTokenInvalid, msgTokenInvalid)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, CodeAuthRequired, msgTokenRequired)
		}
		claims, err := codec.VerifyPurpose(tokenString, jwt.PurposeSession)
		if err != nil {
			return unauthorized(c, CodeTokenInvalid, msgTokenInvalid)
		}
		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.UserContext(), claims.TokenID())
			if err != nil {
				log.Error().Err(err).Msg("consultar registro de revocación")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "no se pudo validar la sesión"})
			}
			if revoked {
				return unauthorized(c, CodeTokenInvalid, msgTokenInvalid)
			}
		}
		c.Locals(LocalClaims, claims)
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalOrganizationID, claims.OrganizationID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// GetClaims devuelve los claims de sesión (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

// GetUserID devuelve el UserID del contexto (0 sin sesión).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetOrganizationID devuelve el OrganizationID del contexto (0 sin sesión).
func GetOrganizationID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalOrganizationID).(int64)
	return id
}
