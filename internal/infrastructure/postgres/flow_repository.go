package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.FlowRepository = (*FlowRepo)(nil)

// FlowRepo pasos configurados por organización.
type FlowRepo struct {
	db Querier
}

// NewFlowRepository construye el adaptador.
func NewFlowRepository(db Querier) *FlowRepo {
	return &FlowRepo{db: db}
}

const flowColumns = `id, organization_id, step_name, description, is_active, skip, created_at, updated_at`

// Upsert crea o actualiza la fila de (organization_id, step_name).
func (r *FlowRepo) Upsert(ctx context.Context, f *entity.Flow) error {
	query := `
		INSERT INTO flows (organization_id, step_name, description, is_active, skip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, step_name) DO UPDATE SET
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			skip = EXCLUDED.skip,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		f.OrganizationID, string(f.StepName), f.Description, f.IsActive, f.Skip, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert flow: %w", err)
	}
	return nil
}

// GetByID obtiene un paso por id.
func (r *FlowRepo) GetByID(ctx context.Context, id int64) (*entity.Flow, error) {
	return r.getOne(ctx, `SELECT `+flowColumns+` FROM flows WHERE id = $1`, id)
}

// GetByOrganizationAndStep obtiene el paso de la organización con ese nombre.
func (r *FlowRepo) GetByOrganizationAndStep(ctx context.Context, organizationID int64, step entity.StepType) (*entity.Flow, error) {
	return r.getOne(ctx, `SELECT `+flowColumns+` FROM flows WHERE organization_id = $1 AND step_name = $2`, organizationID, string(step))
}

func (r *FlowRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Flow, error) {
	var f entity.Flow
	var step string
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.OrganizationID, &step, &f.Description, &f.IsActive, &f.Skip, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flow: %w", err)
	}
	f.StepName = entity.StepType(step)
	return &f, nil
}

// ListByOrganization pasos de la organización por id ascendente.
func (r *FlowRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Flow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flowColumns+` FROM flows WHERE organization_id = $1 ORDER BY id`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list flows: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Flow, 0)
	for rows.Next() {
		var f entity.Flow
		var step string
		if err := rows.Scan(&f.ID, &f.OrganizationID, &step, &f.Description, &f.IsActive, &f.Skip, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan flow: %w", err)
		}
		f.StepName = entity.StepType(step)
		out = append(out, &f)
	}
	return out, rows.Err()
}
