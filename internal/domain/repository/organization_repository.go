package repository

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id int64) (*entity.Organization, error)
}
