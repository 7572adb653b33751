package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModuleResponse entrada del catálogo.
type ModuleResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlanResponse plan con sus módulos por defecto.
type PlanResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ModuleIDs []int64         `json:"module_ids"`
	Price     decimal.Decimal `json:"price"`
	IsTrial   bool            `json:"is_trial"`
}

// CheckAccessRequest body para POST /api/modules/check-access.
type CheckAccessRequest struct {
	ModuleID int64 `json:"module_id"`
}

// CheckAccessResponse decisión de acceso; Message es la razón.
type CheckAccessResponse struct {
	Access  bool   `json:"access"`
	Message string `json:"message"`
}

// AddPlanRequest body para POST /api/plans/activate.
// PlanID es puntero porque 0 (prueba gratuita) es un valor válido.
type AddPlanRequest struct {
	UserID              int64   `json:"user_id"`
	OrganizationID      int64   `json:"organization_id,omitempty"`
	PlanID              *int64  `json:"plan_id"`
	CustomizedModuleIDs []int64 `json:"customized_module_ids"`
}

// AddPlanResponse resultado de la activación.
type AddPlanResponse struct {
	Message          string     `json:"message"`
	OrganizationID   int64      `json:"organization_id"`
	UserID           int64      `json:"user_id"`
	PlanID           int64      `json:"plan_id"`
	AllowedModuleIDs []int64    `json:"allowed_module_ids"`
	TrialStartAt     *time.Time `json:"trial_start_at,omitempty"`
	TrialEndAt       *time.Time `json:"trial_end_at,omitempty"`
}

// MyPlanResponse plan vigente y módulos del usuario en su organización.
type MyPlanResponse struct {
	PlanID       *int64           `json:"plan_id"`
	TrialStartAt *time.Time       `json:"trial_start_at,omitempty"`
	TrialEndAt   *time.Time       `json:"trial_end_at,omitempty"`
	TrialExpired bool             `json:"trial_expired"`
	Modules      []ModuleResponse `json:"modules"`
}

// PaymentStatusRequest body para POST /api/plans/payment-status.
type PaymentStatusRequest struct {
	Status string `json:"status"`
}

// PaymentStatusResponse cantidad de suscripciones actualizadas.
type PaymentStatusResponse struct {
	Updated int64 `json:"updated"`
}
