package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/session"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// SessionHandler enlaces de traspaso hacia la app consumidora.
type SessionHandler struct {
	links *session.LinkService
	log   *logger.Logger
}

// NewSessionHandler construye el handler.
func NewSessionHandler(links *session.LinkService, log *logger.Logger) *SessionHandler {
	return &SessionHandler{links: links, log: log}
}

// GenerateLink godoc
// @Summary      Generar enlace de traspaso (10 minutos)
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateLinkRequest  true  "module_id"
// @Success      200   {object}  dto.GenerateLinkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/links [post]
func (h *SessionHandler) GenerateLink(c *fiber.Ctx) error {
	var in dto.GenerateLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	link, err := h.links.GenerateLink(c.UserContext(), GetUserID(c), GetOrganizationID(c), in.ModuleID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.GenerateLinkResponse{Link: link})
}

// AppData godoc
// @Summary      Resolver enlace de traspaso en el flujo completo
// @Description  Revalida el enlace y el entitlement en cada llamada.
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Param        token  path  string  true  "Token del enlace"
// @Success      200    {object}  dto.FlowBundle
// @Failure      401    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/session/app-data/{token} [get]
func (h *SessionHandler) AppData(c *fiber.Ctx) error {
	out, err := h.links.Resolve(c.UserContext(), GetClaims(c), c.Params("token"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
