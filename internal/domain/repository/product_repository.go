package repository

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// ProductRepository catálogo de productos por organización. Toda operación lleva organization_id:
// un producto de otra organización se comporta como inexistente.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, organizationID, id int64) (*entity.Product, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, organizationID, id int64) error
}
