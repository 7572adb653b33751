package entitlement

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio atado a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito.
type TxRunner interface {
	RunEntitlements(ctx context.Context, fn func(repo repository.EntitlementRepository) error) error
}
