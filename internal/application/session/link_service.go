package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// Entitlements lo que el servicio necesita del resolver de módulos.
type Entitlements interface {
	IsModuleAllowed(ctx context.Context, organizationID, userID, moduleID int64) (bool, error)
	RequireModuleAccess(ctx context.Context, organizationID, moduleID int64) error
}

// BundleProvider arma el bundle de pasos de una organización.
type BundleProvider interface {
	GetFlowBundle(ctx context.Context, organizationID, userID int64) (*dto.FlowBundle, error)
}

// LinkService emite enlaces de traspaso hacia la app consumidora y los resuelve en el bundle de pasos.
// Hay un único enlace vigente por (usuario, organización, módulo): emitir otro invalida el anterior.
type LinkService struct {
	codec        *jwt.Codec
	links        repository.AppLinkRepository
	entitlements Entitlements
	bundles      BundleProvider
	cfg          config.LinkConfig
	log          *logger.Logger
}

// NewLinkService construye el servicio.
func NewLinkService(codec *jwt.Codec, links repository.AppLinkRepository, entitlements Entitlements, bundles BundleProvider, cfg config.LinkConfig, log *logger.Logger) *LinkService {
	if log == nil {
		log = logger.Nop()
	}
	return &LinkService{codec: codec, links: links, entitlements: entitlements, bundles: bundles, cfg: cfg, log: log.Component("session_link")}
}

// GenerateLink emite un token de traspaso y lo registra reemplazando el anterior del mismo módulo.
func (s *LinkService) GenerateLink(ctx context.Context, userID, organizationID, moduleID int64) (string, error) {
	if moduleID <= 0 {
		return "", domain.Invalid("module_id", "obligatorio")
	}
	token, err := s.codec.Issue(jwt.Claims{
		UserID:         userID,
		OrganizationID: organizationID,
		Purpose:        jwt.PurposeHandOff,
		ModuleID:       moduleID,
	}, s.cfg.TTL())
	if err != nil {
		return "", fmt.Errorf("session: emitir token: %w", err)
	}
	now := time.Now().UTC()
	link := &entity.AppLink{
		Token:          token,
		UserID:         userID,
		OrganizationID: organizationID,
		ModuleID:       moduleID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.links.Upsert(ctx, link); err != nil {
		return "", fmt.Errorf("session: guardar enlace: %w", err)
	}
	s.log.Info().Int64("user_id", userID).Int64("organization_id", organizationID).Int64("module_id", moduleID).
		Time("expires_at", now.Add(s.cfg.TTL())).Msg("enlace generado")
	return fmt.Sprintf("%s/session/%s", s.cfg.BaseURL, token), nil
}

// Resolve valida el token de traspaso y el acceso al módulo del enlace, y devuelve el bundle.
// La sesión del llamador ya fue verificada por el middleware y debe ser de la organización del enlace.
func (s *LinkService) Resolve(ctx context.Context, caller *jwt.Claims, handOffToken string) (*dto.FlowBundle, error) {
	if caller == nil {
		return nil, domain.ErrAuthRequired
	}
	if _, err := s.codec.VerifyPurpose(handOffToken, jwt.PurposeHandOff); err != nil {
		return nil, domain.ErrLinkExpired
	}
	link, err := s.links.GetByToken(ctx, handOffToken)
	if err != nil {
		return nil, fmt.Errorf("session: buscar enlace: %w", err)
	}
	if link == nil || !link.IsActive {
		return nil, domain.ErrLinkNotFound
	}
	// Un enlace de otra organización no existe para el llamador.
	if link.OrganizationID != caller.OrganizationID {
		return nil, domain.ErrLinkNotFound
	}

	allowed, err := s.entitlements.IsModuleAllowed(ctx, link.OrganizationID, link.UserID, link.ModuleID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrModuleNotPermitted
	}
	if err := s.entitlements.RequireModuleAccess(ctx, link.OrganizationID, link.ModuleID); err != nil {
		return nil, err
	}

	s.log.Debug().Int64("caller_id", caller.UserID).Int64("link_id", link.ID).Msg("enlace resuelto")
	return s.bundles.GetFlowBundle(ctx, link.OrganizationID, link.UserID)
}
