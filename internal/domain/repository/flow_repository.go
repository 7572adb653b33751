package repository

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// FlowRepository persistencia de los pasos configurados por organización.
type FlowRepository interface {
	// Upsert crea o actualiza la fila de (organization, step_name); completa ID y CreatedAt.
	Upsert(ctx context.Context, flow *entity.Flow) error
	GetByID(ctx context.Context, id int64) (*entity.Flow, error)
	GetByOrganizationAndStep(ctx context.Context, organizationID int64, step entity.StepType) (*entity.Flow, error)
	// ListByOrganization devuelve los pasos en orden de definición (id ascendente).
	ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Flow, error)
}
