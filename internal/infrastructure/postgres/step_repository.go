package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.StepRepository = (*StepRepo)(nil)

// StepRepo respuestas de pasos en step_responses, clave (flow_id, user_id, label).
type StepRepo struct {
	db Querier
}

// NewStepRepository construye el adaptador (pool o tx).
func NewStepRepository(db Querier) *StepRepo {
	return &StepRepo{db: db}
}

// Upsert inserta o actualiza en sitio. El id no cambia entre llamadas.
func (r *StepRepo) Upsert(ctx context.Context, rec *repository.StepRecord) error {
	query := `
		INSERT INTO step_responses
			(flow_id, organization_id, user_id, step_type, label, display_order, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (flow_id, user_id, label) DO UPDATE SET
			display_order = EXCLUDED.display_order,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.FlowID, rec.OrganizationID, rec.UserID, string(rec.StepType), rec.Label, rec.Order, rec.Payload,
		rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert step: %w", err)
	}
	return nil
}

// InsertOnce inserta solo si no hay fila. Si ya existe completa rec.ID con el id existente y devuelve false.
func (r *StepRepo) InsertOnce(ctx context.Context, rec *repository.StepRecord) (bool, error) {
	query := `
		INSERT INTO step_responses
			(flow_id, organization_id, user_id, step_type, label, display_order, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (flow_id, user_id, label) DO NOTHING
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		rec.FlowID, rec.OrganizationID, rec.UserID, string(rec.StepType), rec.Label, rec.Order, rec.Payload,
		rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
	if err == nil {
		return true, nil
	}
	if !isNoRows(err) {
		return false, fmt.Errorf("insert step: %w", err)
	}
	err = r.db.QueryRow(ctx,
		`SELECT id FROM step_responses WHERE flow_id = $1 AND user_id = $2 AND label = $3`,
		rec.FlowID, rec.UserID, rec.Label,
	).Scan(&rec.ID)
	if err != nil {
		return false, fmt.Errorf("get existing step: %w", err)
	}
	return false, nil
}

// DeleteLabelsExcept borra las etiquetas de (flow, user) que no están en keep. Con keep vacío borra todas.
func (r *StepRepo) DeleteLabelsExcept(ctx context.Context, flowID, userID int64, keep []string) (int64, error) {
	if keep == nil {
		keep = []string{}
	}
	tag, err := r.db.Exec(ctx,
		`DELETE FROM step_responses WHERE flow_id = $1 AND user_id = $2 AND NOT (label = ANY($3))`,
		flowID, userID, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("delete step labels: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByFlowAndUser filas del usuario para el paso, por display_order e id.
func (r *StepRepo) ListByFlowAndUser(ctx context.Context, flowID, userID int64) ([]repository.StepRecord, error) {
	query := `
		SELECT id, flow_id, organization_id, user_id, step_type, label, display_order, payload, created_at, updated_at
		FROM step_responses
		WHERE flow_id = $1 AND user_id = $2
		ORDER BY display_order, id`
	rows, err := r.db.Query(ctx, query, flowID, userID)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()
	out := make([]repository.StepRecord, 0)
	for rows.Next() {
		var rec repository.StepRecord
		var step string
		if err := rows.Scan(&rec.ID, &rec.FlowID, &rec.OrganizationID, &rec.UserID, &step, &rec.Label,
			&rec.Order, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		rec.StepType = entity.StepType(step)
		out = append(out, rec)
	}
	return out, rows.Err()
}
