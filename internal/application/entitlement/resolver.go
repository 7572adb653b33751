package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// Resolver responde qué módulos puede usar un usuario y si la organización tiene acceso vigente a uno.
// Solo lectura: nunca escribe.
type Resolver struct {
	repo        repository.EntitlementRepository
	trialPlanID int64
	now         func() time.Time
}

// NewResolver construye el resolver.
func NewResolver(repo repository.EntitlementRepository, trialPlanID int64) *Resolver {
	return &Resolver{repo: repo, trialPlanID: trialPlanID, now: time.Now}
}

// GetAllowedModules devuelve las entradas del catálogo en default ∪ customized del permiso (user, org).
// Sin permiso devuelve lista vacía, no error.
func (r *Resolver) GetAllowedModules(ctx context.Context, organizationID, userID int64) ([]entity.Module, error) {
	perm, err := r.repo.GetPermission(ctx, userID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("entitlement: permiso: %w", err)
	}
	ids := perm.AllowedModuleIDs()
	if len(ids) == 0 {
		return []entity.Module{}, nil
	}
	modules, err := r.repo.ListModulesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("entitlement: módulos: %w", err)
	}
	return modules, nil
}

// IsModuleAllowed informa si el módulo está entre los permitidos del usuario.
func (r *Resolver) IsModuleAllowed(ctx context.Context, organizationID, userID, moduleID int64) (bool, error) {
	perm, err := r.repo.GetPermission(ctx, userID, organizationID)
	if err != nil {
		return false, fmt.Errorf("entitlement: permiso: %w", err)
	}
	for _, id := range perm.AllowedModuleIDs() {
		if id == moduleID {
			return true, nil
		}
	}
	return false, nil
}

// CheckModuleAccess evalúa la suscripción (org, módulo): sin fila, prueba vencida, pago no exitoso, permitido.
func (r *Resolver) CheckModuleAccess(ctx context.Context, organizationID, moduleID int64) (entity.AccessDecision, error) {
	sub, err := r.repo.GetSubscription(ctx, organizationID, moduleID)
	if err != nil {
		return entity.AccessDecision{}, fmt.Errorf("entitlement: suscripción: %w", err)
	}
	return entity.Decide(sub, r.now()), nil
}

// MyPlan plan vigente, ventana de prueba y módulos permitidos del usuario.
func (r *Resolver) MyPlan(ctx context.Context, organizationID, userID int64) (*dto.MyPlanResponse, error) {
	orgPlan, err := r.repo.GetOrganizationPlan(ctx, organizationID, false)
	if err != nil {
		return nil, fmt.Errorf("entitlement: plan de organización: %w", err)
	}
	modules, err := r.GetAllowedModules(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.MyPlanResponse{Modules: ToModuleResponses(modules)}
	if orgPlan != nil {
		planID := orgPlan.PlanID
		out.PlanID = &planID
		out.TrialStartAt = orgPlan.TrialStartAt
		out.TrialEndAt = orgPlan.TrialEndAt
		out.TrialExpired = orgPlan.TrialExpired(r.now())
	}
	return out, nil
}

// ListModules catálogo completo.
func (r *Resolver) ListModules(ctx context.Context) ([]dto.ModuleResponse, error) {
	modules, err := r.repo.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("entitlement: catálogo: %w", err)
	}
	return ToModuleResponses(modules), nil
}

// ListPlans planes disponibles.
func (r *Resolver) ListPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := r.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("entitlement: planes: %w", err)
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		ids := p.ModuleIDs
		if ids == nil {
			ids = []int64{}
		}
		out = append(out, dto.PlanResponse{ID: p.ID, Name: p.Name, ModuleIDs: ids, Price: p.Price, IsTrial: p.ID == r.trialPlanID})
	}
	return out, nil
}

// RequireModuleAccess convierte una decisión negativa en AccessDeniedError.
func (r *Resolver) RequireModuleAccess(ctx context.Context, organizationID, moduleID int64) error {
	decision, err := r.CheckModuleAccess(ctx, organizationID, moduleID)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return &domain.AccessDeniedError{Reason: decision.Reason}
	}
	return nil
}

// ToModuleResponses mapea entradas del catálogo a DTO.
func ToModuleResponses(modules []entity.Module) []dto.ModuleResponse {
	out := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleResponse{ID: m.ID, Code: m.Code, Name: m.Name, Description: m.Description})
	}
	return out
}
