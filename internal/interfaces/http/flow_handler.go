package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// FlowHandler configuración de pasos y respuestas, siempre en la organización del token.
type FlowHandler struct {
	svc  *flow.Service
	orch *flow.Orchestrator
	log  *logger.Logger
}

// NewFlowHandler construye el handler.
func NewFlowHandler(svc *flow.Service, orch *flow.Orchestrator, log *logger.Logger) *FlowHandler {
	return &FlowHandler{svc: svc, orch: orch, log: log}
}

// SaveFlow godoc
// @Summary      Crear o actualizar un paso del flujo
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveFlowRequest  true  "flow_name, description, skip"
// @Success      200   {object}  dto.FlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/flows [post]
func (h *FlowHandler) SaveFlow(c *fiber.Ctx) error {
	var in dto.SaveFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.SaveFlow(c.UserContext(), GetOrganizationID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListFlows godoc
// @Summary      Pasos configurados de la organización
// @Tags         flows
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FlowResponse
// @Router       /api/flows [get]
func (h *FlowHandler) ListFlows(c *fiber.Ctx) error {
	out, err := h.svc.ListFlows(c.UserContext(), GetOrganizationID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Bundle godoc
// @Summary      Flujo completo con las respuestas del usuario
// @Tags         flows
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FlowBundle
// @Router       /api/flows/bundle [get]
func (h *FlowHandler) Bundle(c *fiber.Ctx) error {
	out, err := h.orch.GetFlowBundle(c.UserContext(), GetOrganizationID(c), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetStep godoc
// @Summary      Respuesta guardada de un paso
// @Tags         flows
// @Security     Bearer
// @Produce      json
// @Param        step  path  string  true  "Nombre del paso (ej. Questionnaire)"
// @Success      200   {object}  dto.StepPayloadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/flows/steps/{step} [get]
func (h *FlowHandler) GetStep(c *fiber.Ctx) error {
	out, err := h.svc.GetStep(c.UserContext(), GetOrganizationID(c), GetUserID(c), c.Params("step"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

type saveFunc[T any] func(ctx context.Context, organizationID, userID int64, in T) (*dto.StepSaveResponse, error)

// saveStep parsea el body y guarda. Un conflicto de creación única responde 409 con el id existente.
func saveStep[T any](h *FlowHandler, save saveFunc[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		out, err := save(c.UserContext(), GetOrganizationID(c), GetUserID(c), in)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) && out != nil {
				return c.Status(fiber.StatusConflict).JSON(out)
			}
			return writeError(c, h.log, err)
		}
		return c.JSON(out)
	}
}

// SaveLanding godoc
// @Summary      Guardar portada (creación única)
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LandingPageRequest  true  "flow_id, skip, thumbnail, cta_position"
// @Success      200   {object}  dto.StepSaveResponse
// @Failure      409   {object}  dto.StepSaveResponse
// @Router       /api/flows/landing-page [post]
func (h *FlowHandler) SaveLanding() fiber.Handler { return saveStep(h, h.svc.SaveLanding) }

// SaveQuestionnaire godoc
// @Summary      Guardar cuestionario
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuestionnaireRequest  true  "flow_id, skip, fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/questionnaire [post]
func (h *FlowHandler) SaveQuestionnaire() fiber.Handler { return saveStep(h, h.svc.SaveQuestionnaire) }

// SaveCapture godoc
// @Summary      Guardar pantalla de captura
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CaptureRequest  true  "flow_id, skip, text_area"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/capture [post]
func (h *FlowHandler) SaveCapture() fiber.Handler { return saveStep(h, h.svc.SaveCapture) }

// SaveContact godoc
// @Summary      Guardar datos de contacto solicitados
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "flow_id, skip, fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/contact [post]
func (h *FlowHandler) SaveContact() fiber.Handler { return saveStep(h, h.svc.SaveContact) }

// SaveSegmentation godoc
// @Summary      Guardar segmentación
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SegmentationRequest  true  "flow_id, skip, fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/segmentation [post]
func (h *FlowHandler) SaveSegmentation() fiber.Handler { return saveStep(h, h.svc.SaveSegmentation) }

// SaveSkinGoal godoc
// @Summary      Guardar objetivos de piel
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SkinGoalRequest  true  "flow_id, skip, selected_fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/skin-goal [post]
func (h *FlowHandler) SaveSkinGoal() fiber.Handler { return saveStep(h, h.svc.SaveSkinGoal) }

// SaveSummary godoc
// @Summary      Guardar resumen / rutina
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FieldMapRequest  true  "flow_id, skip, fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/summary [post]
func (h *FlowHandler) SaveSummary() fiber.Handler { return saveStep(h, h.svc.SaveSummary) }

// SaveSuggestProduct godoc
// @Summary      Guardar sugerencia de productos
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FieldMapRequest  true  "flow_id, skip, fields"
// @Success      200   {object}  dto.StepSaveResponse
// @Router       /api/flows/suggest-product [post]
func (h *FlowHandler) SaveSuggestProduct() fiber.Handler { return saveStep(h, h.svc.SaveSuggestProduct) }
