package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/entitlement"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// ModuleHandler catálogo, módulos permitidos, planes y activación.
type ModuleHandler struct {
	resolver *entitlement.Resolver
	plans    *entitlement.PlanActivationService
	log      *logger.Logger
}

// NewModuleHandler construye el handler.
func NewModuleHandler(resolver *entitlement.Resolver, plans *entitlement.PlanActivationService, log *logger.Logger) *ModuleHandler {
	return &ModuleHandler{resolver: resolver, plans: plans, log: log}
}

// ListModules godoc
// @Summary      Catálogo de módulos
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ModuleResponse
// @Router       /api/modules [get]
func (h *ModuleHandler) ListModules(c *fiber.Ctx) error {
	out, err := h.resolver.ListModules(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Allowed godoc
// @Summary      Módulos permitidos del usuario autenticado
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ModuleResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/modules/allowed [get]
func (h *ModuleHandler) Allowed(c *fiber.Ctx) error {
	modules, err := h.resolver.GetAllowedModules(c.UserContext(), GetOrganizationID(c), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleResponse{ID: m.ID, Name: m.Name})
	}
	return c.JSON(out)
}

// Mine godoc
// @Summary      Plan vigente y módulos del usuario
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MyPlanResponse
// @Router       /api/modules/mine [get]
func (h *ModuleHandler) Mine(c *fiber.Ctx) error {
	out, err := h.resolver.MyPlan(c.UserContext(), GetOrganizationID(c), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CheckAccess godoc
// @Summary      Verificar acceso a un módulo
// @Description  Siempre 200 con access=false cuando no hay suscripción; solo el token inválido produce 401.
// @Tags         modules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckAccessRequest  true  "module_id"
// @Success      200   {object}  dto.CheckAccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/modules/check-access [post]
func (h *ModuleHandler) CheckAccess(c *fiber.Ctx) error {
	var in dto.CheckAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ModuleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "module_id es requerido"})
	}
	decision, err := h.resolver.CheckModuleAccess(c.UserContext(), GetOrganizationID(c), in.ModuleID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.CheckAccessResponse{Access: decision.Allowed, Message: decision.Reason})
}

// ListPlans godoc
// @Summary      Planes disponibles
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *ModuleHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.resolver.ListPlans(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ActivatePlan godoc
// @Summary      Activar un plan para un usuario
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPlanRequest  true  "user_id, plan_id, customized_module_ids"
// @Success      200   {object}  dto.AddPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/plans/activate [post]
func (h *ModuleHandler) ActivatePlan(c *fiber.Ctx) error {
	var in dto.AddPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.PlanID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidPlan, Message: "plan_id es requerido"})
	}
	res, err := h.plans.AddPlan(c.UserContext(), entitlement.AddPlanInput{
		AdminID:             GetUserID(c),
		UserID:              in.UserID,
		OrganizationID:      in.OrganizationID,
		PlanID:              *in.PlanID,
		CustomizedModuleIDs: in.CustomizedModuleIDs,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.AddPlanResponse{
		Message:          "Plan activated",
		OrganizationID:   res.OrganizationID,
		UserID:           res.UserID,
		PlanID:           res.PlanID,
		AllowedModuleIDs: res.AllowedModuleIDs,
		TrialStartAt:     res.TrialStartAt,
		TrialEndAt:       res.TrialEndAt,
	})
}

// PaymentStatus godoc
// @Summary      Actualizar estado de pago de la organización
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentStatusRequest  true  "Success, Pending o Failed"
// @Success      200   {object}  dto.PaymentStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plans/payment-status [post]
func (h *ModuleHandler) PaymentStatus(c *fiber.Ctx) error {
	var in dto.PaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	n, err := h.plans.UpdatePaymentStatus(c.UserContext(), GetOrganizationID(c), in.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PaymentStatusResponse{Updated: n})
}
