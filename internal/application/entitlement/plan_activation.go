package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// PlanActivationService concede planes a un usuario y mantiene las suscripciones por módulo de su organización.
// La prueba gratuita se concede como máximo una vez por organización.
type PlanActivationService struct {
	users repository.UserRepository
	tx    TxRunner
	cfg   config.PlanConfig
	log   *logger.Logger
	now   func() time.Time
}

// NewPlanActivationService construye el servicio.
func NewPlanActivationService(users repository.UserRepository, tx TxRunner, cfg config.PlanConfig, log *logger.Logger) *PlanActivationService {
	if log == nil {
		log = logger.Nop()
	}
	return &PlanActivationService{users: users, tx: tx, cfg: cfg, log: log.Component("plan_activation"), now: time.Now}
}

// AddPlanInput entrada de AddPlan. OrganizationID 0 = la organización del usuario.
type AddPlanInput struct {
	AdminID             int64
	UserID              int64
	OrganizationID      int64
	PlanID              int64
	CustomizedModuleIDs []int64
}

// PlanActivationResult estado resultante tras el commit.
type PlanActivationResult struct {
	OrganizationID   int64
	UserID           int64
	PlanID           int64
	AllowedModuleIDs []int64
	TrialStartAt     *time.Time
	TrialEndAt       *time.Time
}

// AddPlan concede el plan en una única transacción: permiso, ventana de prueba y suscripciones.
func (s *PlanActivationService) AddPlan(ctx context.Context, in AddPlanInput) (*PlanActivationResult, error) {
	if in.UserID <= 0 {
		return nil, domain.Invalid("user_id", "obligatorio")
	}
	admin, err := s.users.GetByID(ctx, in.AdminID)
	if err != nil {
		return nil, fmt.Errorf("plan: admin: %w", err)
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if !admin.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("plan: usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	orgID := in.OrganizationID
	if orgID == 0 {
		orgID = user.OrganizationID
	}
	if orgID != user.OrganizationID || admin.OrganizationID != user.OrganizationID {
		return nil, domain.ErrUnauthorized
	}

	isTrial := in.PlanID == s.cfg.TrialPlanID
	now := s.now().UTC()
	result := &PlanActivationResult{OrganizationID: orgID, UserID: user.ID, PlanID: in.PlanID}

	err = s.tx.RunEntitlements(ctx, func(repo repository.EntitlementRepository) error {
		orgPlan, err := repo.GetOrganizationPlan(ctx, orgID, true)
		if err != nil {
			return fmt.Errorf("plan de organización: %w", err)
		}
		if isTrial {
			if orgPlan.TrialExpired(now) {
				return domain.ErrTrialExpired
			}
			if orgPlan.TrialUsed() {
				return domain.ErrTrialAlreadyUsed
			}
		}

		plan, err := repo.GetPlan(ctx, in.PlanID)
		if err != nil {
			return fmt.Errorf("plan: %w", err)
		}
		if plan == nil {
			return domain.ErrInvalidPlan
		}
		customized := entity.UnionIDs(in.CustomizedModuleIDs)
		if len(customized) > 0 {
			known, err := repo.ListModulesByIDs(ctx, customized)
			if err != nil {
				return fmt.Errorf("módulos: %w", err)
			}
			if len(known) != len(customized) {
				return domain.Invalid("customized_module_ids", "contiene módulos inexistentes")
			}
		}

		perm := &entity.ModulePermission{
			UserID:              user.ID,
			OrganizationID:      orgID,
			PlanID:              plan.ID,
			DefaultModuleIDs:    entity.UnionIDs(plan.ModuleIDs),
			CustomizedModuleIDs: customized,
			GrantedBy:           admin.ID,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := repo.UpsertPermission(ctx, perm); err != nil {
			return fmt.Errorf("permiso: %w", err)
		}

		if isTrial {
			end := now.Add(s.cfg.TrialPeriod())
			started, err := repo.StartTrial(ctx, orgID, plan.ID, now, end)
			if err != nil {
				return fmt.Errorf("ventana de prueba: %w", err)
			}
			if !started {
				return domain.ErrTrialAlreadyUsed
			}
			result.TrialStartAt, result.TrialEndAt = &now, &end
		} else if err := repo.SetOrganizationPlan(ctx, orgID, plan.ID, now); err != nil {
			return fmt.Errorf("plan de organización: %w", err)
		}

		result.AllowedModuleIDs = perm.AllowedModuleIDs()
		for _, moduleID := range result.AllowedModuleIDs {
			sub := &entity.ModuleSubscription{
				OrganizationID: orgID,
				ModuleID:       moduleID,
				PlanID:         plan.ID,
				UpdatedAt:      now,
			}
			if isTrial {
				sub.TrialStartAt, sub.TrialEndAt = result.TrialStartAt, result.TrialEndAt
				sub.PaymentStatus = entity.PaymentStatusSuccess
			} else {
				current, err := repo.GetSubscription(ctx, orgID, moduleID)
				if err != nil {
					return fmt.Errorf("suscripción: %w", err)
				}
				// Solo un pago real se conserva; el "Success" de una fila de prueba no cuenta como pago.
				sub.PaymentStatus = entity.PaymentStatusPending
				if current != nil && current.PaymentStatus == entity.PaymentStatusSuccess &&
					current.TrialEndAt == nil && current.PlanID != s.cfg.TrialPlanID {
					sub.PaymentStatus = entity.PaymentStatusSuccess
				}
			}
			if err := repo.UpsertSubscription(ctx, sub); err != nil {
				return fmt.Errorf("suscripción %d: %w", moduleID, err)
			}
		}
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			s.log.Error().Err(err).Int64("organization_id", orgID).Int64("plan_id", in.PlanID).Msg("add plan falló")
		}
		return nil, err
	}
	s.log.Info().Int64("organization_id", orgID).Int64("user_id", user.ID).Int64("plan_id", in.PlanID).
		Int("modules", len(result.AllowedModuleIDs)).Msg("plan concedido")
	return result, nil
}

// UpdatePaymentStatus marca todas las suscripciones de la organización con el estado indicado.
func (s *PlanActivationService) UpdatePaymentStatus(ctx context.Context, organizationID int64, status string) (int64, error) {
	if !entity.ValidPaymentStatus(status) {
		return 0, domain.Invalid("status", "estado de pago desconocido")
	}
	var n int64
	err := s.tx.RunEntitlements(ctx, func(repo repository.EntitlementRepository) error {
		var err error
		n, err = repo.UpdatePaymentStatus(ctx, organizationID, status, s.now().UTC())
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("plan: estado de pago: %w", err)
	}
	s.log.Info().Int64("organization_id", organizationID).Str("status", status).Int64("rows", n).Msg("estado de pago actualizado")
	return n, nil
}

func isDomainError(err error) bool {
	var v *domain.ValidationError
	return errors.Is(err, domain.ErrTrialExpired) ||
		errors.Is(err, domain.ErrTrialAlreadyUsed) ||
		errors.Is(err, domain.ErrInvalidPlan) ||
		errors.As(err, &v)
}
