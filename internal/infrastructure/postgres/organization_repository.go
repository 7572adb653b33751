package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	db Querier
}

// NewOrganizationRepository construye el adaptador.
func NewOrganizationRepository(db Querier) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

// Create persiste la organización y completa su ID.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (name, website, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRow(ctx, query, org.Name, org.Website, org.Email, org.CreatedAt).Scan(&org.ID); err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(ctx context.Context, id int64) (*entity.Organization, error) {
	var o entity.Organization
	err := r.db.QueryRow(ctx, `SELECT id, name, website, email, created_at FROM organizations WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Website, &o.Email, &o.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}
