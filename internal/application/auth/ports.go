package auth

import (
	"context"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// TxRunner crea organización y usuario en una única transacción.
type TxRunner interface {
	RunAccounts(ctx context.Context, fn func(orgs repository.OrganizationRepository, users repository.UserRepository) error) error
}

// Mailer envía el correo de verificación. Implementación en infrastructure/mail.
type Mailer interface {
	SendVerification(ctx context.Context, to, fullName, link string) error
}

// TokenRevoker registro de tokens revocados por jti. Implementación en infrastructure/redis.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ModuleLister módulos permitidos del usuario (se devuelven en el login).
type ModuleLister interface {
	GetAllowedModules(ctx context.Context, organizationID, userID int64) ([]entity.Module, error)
}
