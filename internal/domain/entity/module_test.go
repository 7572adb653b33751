package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

func TestModulePermission_AllowedModuleIDs_UnionSinDuplicados(t *testing.T) {
	p := &entity.ModulePermission{
		DefaultModuleIDs:    []int64{4, 1, 2, 2},
		CustomizedModuleIDs: []int64{2, 9, 1},
	}
	assert.Equal(t, []int64{1, 2, 4, 9}, p.AllowedModuleIDs())
}

func TestModulePermission_AllowedModuleIDs_Nil(t *testing.T) {
	var p *entity.ModulePermission
	assert.Empty(t, p.AllowedModuleIDs())
	assert.NotNil(t, p.AllowedModuleIDs(), "sin permiso se devuelve lista vacía, no nil")
}

func TestDecide_OrdenDeReglas(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name    string
		sub     *entity.ModuleSubscription
		allowed bool
		reason  string
	}{
		{"sin fila", nil, false, entity.ReasonModuleNotFound},
		{"prueba vencida aunque pagó", &entity.ModuleSubscription{TrialEndAt: &past, PaymentStatus: entity.PaymentStatusSuccess}, false, entity.ReasonPlanExpired},
		{"vence exactamente ahora", &entity.ModuleSubscription{TrialEndAt: &now, PaymentStatus: entity.PaymentStatusSuccess}, false, entity.ReasonPlanExpired},
		{"pago pendiente", &entity.ModuleSubscription{TrialEndAt: &future, PaymentStatus: entity.PaymentStatusPending}, false, entity.ReasonSubscriptionInactive},
		{"plan pago sin vencimiento", &entity.ModuleSubscription{PaymentStatus: entity.PaymentStatusSuccess}, true, entity.ReasonAccessGranted},
		{"prueba vigente", &entity.ModuleSubscription{TrialEndAt: &future, PaymentStatus: entity.PaymentStatusSuccess}, true, entity.ReasonAccessGranted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := entity.Decide(tc.sub, now)
			assert.Equal(t, tc.allowed, d.Allowed)
			assert.Equal(t, tc.reason, d.Reason)
		})
	}
}

func TestParseStepType(t *testing.T) {
	st, ok := entity.ParseStepType("  skin goal ")
	assert.True(t, ok)
	assert.Equal(t, entity.StepSkinGoal, st)

	st, ok = entity.ParseStepType("Questionnaire")
	assert.True(t, ok)
	assert.Equal(t, entity.StepQuestionnaire, st)

	_, ok = entity.ParseStepType("Checkout")
	assert.False(t, ok)
}
