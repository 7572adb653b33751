package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.EntitlementRepository = (*EntitlementRepo)(nil)

// EntitlementRepo módulos, planes, permisos y suscripciones sobre PostgreSQL.
type EntitlementRepo struct {
	db Querier
}

// NewEntitlementRepository construye el adaptador (pool o tx).
func NewEntitlementRepository(db Querier) *EntitlementRepo {
	return &EntitlementRepo{db: db}
}

// ListModules catálogo completo ordenado por id.
func (r *EntitlementRepo) ListModules(ctx context.Context) ([]entity.Module, error) {
	return r.queryModules(ctx, `SELECT id, code, name, description FROM modules ORDER BY id`)
}

// ListModulesByIDs entradas del catálogo con esos ids, ordenadas por id.
func (r *EntitlementRepo) ListModulesByIDs(ctx context.Context, ids []int64) ([]entity.Module, error) {
	if len(ids) == 0 {
		return []entity.Module{}, nil
	}
	return r.queryModules(ctx, `SELECT id, code, name, description FROM modules WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *EntitlementRepo) queryModules(ctx context.Context, query string, args ...any) ([]entity.Module, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()
	out := make([]entity.Module, 0)
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListPlans planes ordenados por id.
func (r *EntitlementRepo) ListPlans(ctx context.Context) ([]entity.Plan, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, module_ids, price FROM module_payment_plans ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	out := make([]entity.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetPlan obtiene un plan por id.
func (r *EntitlementRepo) GetPlan(ctx context.Context, id int64) (*entity.Plan, error) {
	p, err := scanPlan(r.db.QueryRow(ctx, `SELECT id, name, module_ids, price FROM module_payment_plans WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanPlan(row pgx.Row) (*entity.Plan, error) {
	var p entity.Plan
	var raw []byte
	if err := row.Scan(&p.ID, &p.Name, &raw, &p.Price); err != nil {
		if isNoRows(err) {
			return nil, err
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}
	ids, err := idsFromJSON(raw)
	if err != nil {
		return nil, err
	}
	p.ModuleIDs = ids
	return &p, nil
}

// GetPermission fila única de (user, organization).
func (r *EntitlementRepo) GetPermission(ctx context.Context, userID, organizationID int64) (*entity.ModulePermission, error) {
	query := `
		SELECT id, user_id, organization_id, plan_id, default_module_ids, customized_module_ids, granted_by, created_at, updated_at
		FROM module_permissions WHERE user_id = $1 AND organization_id = $2`
	var p entity.ModulePermission
	var def, custom []byte
	err := r.db.QueryRow(ctx, query, userID, organizationID).Scan(
		&p.ID, &p.UserID, &p.OrganizationID, &p.PlanID, &def, &custom, &p.GrantedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	if p.DefaultModuleIDs, err = idsFromJSON(def); err != nil {
		return nil, err
	}
	if p.CustomizedModuleIDs, err = idsFromJSON(custom); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertPermission inserta o actualiza la fila de (user, organization) sin carrera (ON CONFLICT).
func (r *EntitlementRepo) UpsertPermission(ctx context.Context, p *entity.ModulePermission) error {
	def, err := idsToJSON(p.DefaultModuleIDs)
	if err != nil {
		return err
	}
	custom, err := idsToJSON(p.CustomizedModuleIDs)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO module_permissions
			(user_id, organization_id, plan_id, default_module_ids, customized_module_ids, granted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, organization_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			default_module_ids = EXCLUDED.default_module_ids,
			customized_module_ids = EXCLUDED.customized_module_ids,
			granted_by = EXCLUDED.granted_by,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.db.QueryRow(ctx, query,
		p.UserID, p.OrganizationID, p.PlanID, def, custom, p.GrantedBy, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert permission: %w", err)
	}
	return nil
}

// GetOrganizationPlan ventana de prueba de la organización. Con forUpdate bloquea la fila (SELECT FOR UPDATE).
func (r *EntitlementRepo) GetOrganizationPlan(ctx context.Context, organizationID int64, forUpdate bool) (*entity.OrganizationPlan, error) {
	query := `
		SELECT organization_id, plan_id, trial_start_at, trial_end_at, updated_at
		FROM organization_plans WHERE organization_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.OrganizationPlan
	err := r.db.QueryRow(ctx, query, organizationID).Scan(&p.OrganizationID, &p.PlanID, &p.TrialStartAt, &p.TrialEndAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization plan: %w", err)
	}
	return &p, nil
}

// StartTrial escribe trial_start_at solo si nunca se escribió. Devuelve false si ya existía.
func (r *EntitlementRepo) StartTrial(ctx context.Context, organizationID, planID int64, start, end time.Time) (bool, error) {
	query := `
		INSERT INTO organization_plans (organization_id, plan_id, trial_start_at, trial_end_at, updated_at)
		VALUES ($1, $2, $3, $4, $3)
		ON CONFLICT (organization_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			trial_start_at = EXCLUDED.trial_start_at,
			trial_end_at = EXCLUDED.trial_end_at,
			updated_at = EXCLUDED.updated_at
		WHERE organization_plans.trial_start_at IS NULL
		RETURNING organization_id`
	var id int64
	err := r.db.QueryRow(ctx, query, organizationID, planID, start, end).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("start trial: %w", err)
	}
	return true, nil
}

// SetOrganizationPlan registra el plan vigente; la ventana de prueba no se toca.
func (r *EntitlementRepo) SetOrganizationPlan(ctx context.Context, organizationID, planID int64, at time.Time) error {
	query := `
		INSERT INTO organization_plans (organization_id, plan_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (organization_id) DO UPDATE SET plan_id = EXCLUDED.plan_id, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, organizationID, planID, at); err != nil {
		return fmt.Errorf("set organization plan: %w", err)
	}
	return nil
}

// GetSubscription fila de (organization, module).
func (r *EntitlementRepo) GetSubscription(ctx context.Context, organizationID, moduleID int64) (*entity.ModuleSubscription, error) {
	query := `
		SELECT id, organization_id, module_id, plan_id, trial_start_at, trial_end_at, payment_status, updated_at
		FROM organization_modules WHERE organization_id = $1 AND module_id = $2`
	var s entity.ModuleSubscription
	err := r.db.QueryRow(ctx, query, organizationID, moduleID).Scan(
		&s.ID, &s.OrganizationID, &s.ModuleID, &s.PlanID, &s.TrialStartAt, &s.TrialEndAt, &s.PaymentStatus, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// UpsertSubscription inserta o actualiza la fila de (organization, module).
func (r *EntitlementRepo) UpsertSubscription(ctx context.Context, s *entity.ModuleSubscription) error {
	query := `
		INSERT INTO organization_modules
			(organization_id, module_id, plan_id, trial_start_at, trial_end_at, payment_status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, module_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			trial_start_at = EXCLUDED.trial_start_at,
			trial_end_at = EXCLUDED.trial_end_at,
			payment_status = EXCLUDED.payment_status,
			updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		s.OrganizationID, s.ModuleID, s.PlanID, s.TrialStartAt, s.TrialEndAt, s.PaymentStatus, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

// UpdatePaymentStatus marca todas las suscripciones de la organización.
func (r *EntitlementRepo) UpdatePaymentStatus(ctx context.Context, organizationID int64, status string, at time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE organization_modules SET payment_status = $2, updated_at = $3 WHERE organization_id = $1`,
		organizationID, status, at)
	if err != nil {
		return 0, fmt.Errorf("update payment status: %w", err)
	}
	return tag.RowsAffected(), nil
}
