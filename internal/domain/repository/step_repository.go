package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// StepRecord fila de respuesta de un paso. Los pasos sin etiqueta usan Label vacío.
// Payload es JSON ya serializado.
type StepRecord struct {
	ID             int64
	FlowID         int64
	OrganizationID int64
	UserID         int64
	StepType       entity.StepType
	Label          string
	Order          int
	Payload        []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StepRepository persistencia genérica de respuestas, clave única (flow_id, user_id, label).
type StepRepository interface {
	// Upsert inserta o actualiza en sitio; completa ID (estable entre llamadas).
	Upsert(ctx context.Context, rec *StepRecord) error
	// InsertOnce inserta solo si no existe. Devuelve false y el ID existente si ya había fila.
	InsertOnce(ctx context.Context, rec *StepRecord) (bool, error)
	// DeleteLabelsExcept borra las filas de (flow, user) cuya etiqueta no está en keep. Devuelve cuántas borró.
	DeleteLabelsExcept(ctx context.Context, flowID, userID int64, keep []string) (int64, error)
	// ListByFlowAndUser devuelve las filas ordenadas por display_order e id.
	ListByFlowAndUser(ctx context.Context, flowID, userID int64) ([]StepRecord, error)
}
