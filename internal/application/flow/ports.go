package flow

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// TxRunner ejecuta escrituras de varias filas de respuesta en una única transacción.
type TxRunner interface {
	RunSteps(ctx context.Context, fn func(repo repository.StepRepository) error) error
}
