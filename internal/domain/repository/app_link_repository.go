package repository

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// AppLinkRepository persistencia de los enlaces de traspaso.
type AppLinkRepository interface {
	// Upsert reemplaza el token de (user, organization, module) o crea la fila; completa ID.
	Upsert(ctx context.Context, link *entity.AppLink) error
	GetByToken(ctx context.Context, token string) (*entity.AppLink, error)
}
