package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusSuccess es el único estado de pago que concede acceso.
const (
	PaymentStatusSuccess = "Success"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// ValidPaymentStatus informa si el estado es uno de los conocidos.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusPending, PaymentStatusFailed:
		return true
	}
	return false
}

// Razones de AccessDecision (también se devuelven tal cual al cliente).
const (
	ReasonModuleNotFound       = "Module not found"
	ReasonPlanExpired          = "Plan Expired"
	ReasonSubscriptionInactive = "Subscription inactive"
	ReasonAccessGranted        = "Access granted"
)

// Module entrada del catálogo: un área de capacidad que se compra por separado.
type Module struct {
	ID          int64
	Code        string
	Name        string
	Description string
}

// Plan (ModulePaymentPlan) agrupa un conjunto de módulos por defecto.
type Plan struct {
	ID        int64
	Name      string
	ModuleIDs []int64
	Price     decimal.Decimal
}

// ModulePermission una fila por (usuario, organización).
// DefaultModuleIDs es la foto de los módulos del plan al momento de concederlo.
type ModulePermission struct {
	ID                  int64
	UserID              int64
	OrganizationID      int64
	PlanID              int64
	DefaultModuleIDs    []int64
	CustomizedModuleIDs []int64
	GrantedBy           int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AllowedModuleIDs devuelve default ∪ customized, sin duplicados y ordenado.
func (p *ModulePermission) AllowedModuleIDs() []int64 {
	if p == nil {
		return []int64{}
	}
	return UnionIDs(p.DefaultModuleIDs, p.CustomizedModuleIDs)
}

// UnionIDs une listas de ids eliminando duplicados (resultado ordenado ascendente).
func UnionIDs(lists ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, l := range lists {
		for _, id := range l {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OrganizationPlan ventana de prueba a nivel organización.
// TrialStartAt se escribe como máximo una vez por organización.
type OrganizationPlan struct {
	OrganizationID int64
	PlanID         int64
	TrialStartAt   *time.Time
	TrialEndAt     *time.Time
	UpdatedAt      time.Time
}

// TrialExpired informa si la ventana de prueba existe y ya venció.
func (p *OrganizationPlan) TrialExpired(now time.Time) bool {
	return p != nil && p.TrialEndAt != nil && !now.Before(*p.TrialEndAt)
}

// TrialUsed informa si la prueba ya fue iniciada alguna vez.
func (p *OrganizationPlan) TrialUsed() bool {
	return p != nil && p.TrialStartAt != nil
}

// ModuleSubscription estado de suscripción de una organización a un módulo.
type ModuleSubscription struct {
	ID             int64
	OrganizationID int64
	ModuleID       int64
	PlanID         int64
	TrialStartAt   *time.Time
	TrialEndAt     *time.Time
	PaymentStatus  string
	UpdatedAt      time.Time
}

// AccessDecision resultado de evaluar el acceso a un módulo.
type AccessDecision struct {
	Allowed bool
	Reason  string
}

// Decide aplica la regla de acceso en orden: sin fila, prueba vencida, pago no exitoso, permitido.
func Decide(sub *ModuleSubscription, now time.Time) AccessDecision {
	switch {
	case sub == nil:
		return AccessDecision{Allowed: false, Reason: ReasonModuleNotFound}
	case sub.TrialEndAt != nil && !now.Before(*sub.TrialEndAt):
		return AccessDecision{Allowed: false, Reason: ReasonPlanExpired}
	case sub.PaymentStatus != PaymentStatusSuccess:
		return AccessDecision{Allowed: false, Reason: ReasonSubscriptionInactive}
	default:
		return AccessDecision{Allowed: true, Reason: ReasonAccessGranted}
	}
}
