package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.AppLinkRepository = (*AppLinkRepo)(nil)

// AppLinkRepo enlaces de traspaso, uno por (user, organization, module).
type AppLinkRepo struct {
	db Querier
}

// NewAppLinkRepository construye el adaptador.
func NewAppLinkRepository(db Querier) *AppLinkRepo {
	return &AppLinkRepo{db: db}
}

// Upsert reemplaza el token vigente de la tripleta o crea la fila.
func (r *AppLinkRepo) Upsert(ctx context.Context, l *entity.AppLink) error {
	query := `
		INSERT INTO app_links (token, user_id, organization_id, module_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, organization_id, module_id) DO UPDATE SET
			token = EXCLUDED.token,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		l.Token, l.UserID, l.OrganizationID, l.ModuleID, l.IsActive, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert app link: %w", err)
	}
	return nil
}

// GetByToken busca el enlace por token exacto.
func (r *AppLinkRepo) GetByToken(ctx context.Context, token string) (*entity.AppLink, error) {
	var l entity.AppLink
	err := r.db.QueryRow(ctx, `
		SELECT id, token, user_id, organization_id, module_id, is_active, created_at, updated_at
		FROM app_links WHERE token = $1`, token,
	).Scan(&l.ID, &l.Token, &l.UserID, &l.OrganizationID, &l.ModuleID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app link: %w", err)
	}
	return &l, nil
}
