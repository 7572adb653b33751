package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre PostgreSQL (pool o tx).
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, organization_id, name, sku, description, image_url, amount, available_stock, gst, routines, is_active, created_at, updated_at`

// Create inserta el producto y completa su ID. SKU repetido en la organización = ErrConflict.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (organization_id, name, sku, description, image_url, amount, available_stock, gst, routines, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		p.OrganizationID, p.Name, p.SKU, p.Description, p.ImageURL, p.Amount, p.AvailableStock,
		p.GST, p.Routines, p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID producto de la organización; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, organizationID, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE organization_id = $1 AND id = $2`, organizationID, id).
		Scan(productDest(&p)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByOrganization productos ordenados por nombre.
func (r *ProductRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE organization_id = $1 ORDER BY name, id`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(productDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update reemplaza los campos editables. ErrNotFound si el producto no es de la organización.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET
			name = $3, sku = $4, description = $5, image_url = $6, amount = $7,
			available_stock = $8, gst = $9, routines = $10, updated_at = $11
		WHERE organization_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query,
		p.OrganizationID, p.ID, p.Name, p.SKU, p.Description, p.ImageURL, p.Amount,
		p.AvailableStock, p.GST, p.Routines, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el producto de la organización. ErrNotFound si no existe.
func (r *ProductRepo) Delete(ctx context.Context, organizationID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func productDest(p *entity.Product) []any {
	return []any{
		&p.ID, &p.OrganizationID, &p.Name, &p.SKU, &p.Description, &p.ImageURL, &p.Amount,
		&p.AvailableStock, &p.GST, &p.Routines, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	}
}
