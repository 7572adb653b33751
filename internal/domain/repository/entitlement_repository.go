package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// EntitlementRepository acceso relacional a módulos, planes, permisos y suscripciones.
// Los Get* devuelven (nil, nil) cuando no hay fila.
type EntitlementRepository interface {
	ListModules(ctx context.Context) ([]entity.Module, error)
	// ListModulesByIDs devuelve las entradas del catálogo con esos ids, ordenadas por id.
	ListModulesByIDs(ctx context.Context, ids []int64) ([]entity.Module, error)
	ListPlans(ctx context.Context) ([]entity.Plan, error)
	GetPlan(ctx context.Context, id int64) (*entity.Plan, error)

	GetPermission(ctx context.Context, userID, organizationID int64) (*entity.ModulePermission, error)
	// UpsertPermission inserta o actualiza la fila única de (user, organization).
	UpsertPermission(ctx context.Context, p *entity.ModulePermission) error

	// GetOrganizationPlan con forUpdate bloquea la fila hasta el fin de la transacción.
	GetOrganizationPlan(ctx context.Context, organizationID int64, forUpdate bool) (*entity.OrganizationPlan, error)
	// StartTrial fija la ventana de prueba solo si nunca se inició. Devuelve false si ya existía.
	StartTrial(ctx context.Context, organizationID, planID int64, start, end time.Time) (bool, error)
	// SetOrganizationPlan registra el plan vigente sin tocar la ventana de prueba.
	SetOrganizationPlan(ctx context.Context, organizationID, planID int64, at time.Time) error

	GetSubscription(ctx context.Context, organizationID, moduleID int64) (*entity.ModuleSubscription, error)
	// UpsertSubscription inserta o actualiza la fila única de (organization, module).
	UpsertSubscription(ctx context.Context, s *entity.ModuleSubscription) error
	UpdatePaymentStatus(ctx context.Context, organizationID int64, status string, at time.Time) (int64, error)
}
