package repository

import (
	"context"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByVerifyToken(ctx context.Context, token string) (*entity.User, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.User, error)
	MarkVerified(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
}
