package entitlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/memory"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	resolver *Resolver
	plans    *PlanActivationService
	orgID    int64
	adminID  int64
	userID   int64
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedModules(
		entity.Module{ID: 1, Code: "inventory", Name: "Inventory"},
		entity.Module{ID: 2, Code: "flows", Name: "Flows"},
		entity.Module{ID: 3, Code: "analytics", Name: "Analytics"},
	)
	store.SeedPlans(
		entity.Plan{ID: 0, Name: "Trial", ModuleIDs: []int64{1, 2}},
		entity.Plan{ID: 1, Name: "Standard", ModuleIDs: []int64{1}, Price: decimal.RequireFromString("29.90")},
	)

	org := &entity.Organization{Name: "Acme"}
	require.NoError(t, store.Organizations().Create(ctx, org))
	admin := &entity.User{OrganizationID: org.ID, Email: "admin@acme.test", Role: entity.RoleAdmin}
	require.NoError(t, store.Users().Create(ctx, admin))
	user := &entity.User{OrganizationID: org.ID, Email: "user@acme.test", Role: entity.RoleUser}
	require.NoError(t, store.Users().Create(ctx, user))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.PlanConfig{TrialPlanID: 0, TrialDays: 15}
	f := &fixture{
		store:    store,
		resolver: NewResolver(store.Entitlements(), cfg.TrialPlanID),
		plans:    NewPlanActivationService(store.Users(), store, cfg, logger.Nop()),
		orgID:    org.ID,
		adminID:  admin.ID,
		userID:   user.ID,
		now:      now,
	}
	f.setNow(now)
	return f
}

func (f *fixture) setNow(now time.Time) {
	f.now = now
	f.resolver.now = func() time.Time { return now }
	f.plans.now = func() time.Time { return now }
}

func (f *fixture) addPlan(planID int64, customized ...int64) (*PlanActivationResult, error) {
	return f.plans.AddPlan(context.Background(), AddPlanInput{
		AdminID: f.adminID, UserID: f.userID, PlanID: planID, CustomizedModuleIDs: customized,
	})
}

func TestAddPlan_Trial_VentanaDe15Dias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.addPlan(0)
	require.NoError(t, err)
	require.NotNil(t, res.TrialEndAt)
	assert.Equal(t, f.now, *res.TrialStartAt)
	assert.Equal(t, f.now.Add(15*24*time.Hour), *res.TrialEndAt)
	assert.Equal(t, []int64{1, 2}, res.AllowedModuleIDs)

	sub, err := f.store.Entitlements().GetSubscription(ctx, f.orgID, 2)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, entity.PaymentStatusSuccess, sub.PaymentStatus)
	assert.Equal(t, f.now.Add(15*24*time.Hour), *sub.TrialEndAt)

	decision, err := f.resolver.CheckModuleAccess(ctx, f.orgID, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.AccessDecision{Allowed: true, Reason: entity.ReasonAccessGranted}, decision)
}

func TestAddPlan_SegundaPrueba_YaUtilizada(t *testing.T) {
	f := newFixture(t)
	_, err := f.addPlan(0)
	require.NoError(t, err)

	f.setNow(f.now.Add(24 * time.Hour))
	_, err = f.addPlan(0)
	assert.ErrorIs(t, err, domain.ErrTrialAlreadyUsed)

	// Otro admin de la misma organización tampoco puede reabrir la prueba.
	other := &entity.User{OrganizationID: f.orgID, Email: "other@acme.test", Role: entity.RoleAdmin}
	require.NoError(t, f.store.Users().Create(context.Background(), other))
	_, err = f.plans.AddPlan(context.Background(), AddPlanInput{AdminID: other.ID, UserID: f.userID, PlanID: 0})
	assert.ErrorIs(t, err, domain.ErrTrialAlreadyUsed)
}

func TestAddPlan_PruebaVencida(t *testing.T) {
	f := newFixture(t)
	_, err := f.addPlan(0)
	require.NoError(t, err)

	f.setNow(f.now.Add(16 * 24 * time.Hour))
	_, err = f.addPlan(0)
	assert.ErrorIs(t, err, domain.ErrTrialExpired)

	decision, err := f.resolver.CheckModuleAccess(context.Background(), f.orgID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.AccessDecision{Allowed: false, Reason: entity.ReasonPlanExpired}, decision,
		"una prueba vencida niega el acceso aunque el pago figure como Success")
}

func TestAddPlan_PlanInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.addPlan(99)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	perm, err := f.store.Entitlements().GetPermission(context.Background(), f.userID, f.orgID)
	require.NoError(t, err)
	assert.Nil(t, perm)
}

func TestAddPlan_Pago_PendienteYCustomizados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.addPlan(1, 3, 1)
	require.NoError(t, err)
	assert.Nil(t, res.TrialEndAt)
	assert.Equal(t, []int64{1, 3}, res.AllowedModuleIDs)

	sub, err := f.store.Entitlements().GetSubscription(ctx, f.orgID, 3)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, entity.PaymentStatusPending, sub.PaymentStatus)

	decision, err := f.resolver.CheckModuleAccess(ctx, f.orgID, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonSubscriptionInactive, decision.Reason)

	n, err := f.plans.UpdatePaymentStatus(ctx, f.orgID, entity.PaymentStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Re-conceder el plan pago conserva el estado Success.
	_, err = f.addPlan(1, 3)
	require.NoError(t, err)
	decision, err = f.resolver.CheckModuleAccess(ctx, f.orgID, 3)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestAddPlan_PruebaLuegoPago_NoHeredaSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.addPlan(0)
	require.NoError(t, err)
	decision, err := f.resolver.CheckModuleAccess(ctx, f.orgID, 1)
	require.NoError(t, err)
	require.True(t, decision.Allowed)

	// Pasar a un plan pago sin pagar deja el módulo pendiente, no con acceso permanente.
	f.setNow(f.now.Add(24 * time.Hour))
	_, err = f.addPlan(1)
	require.NoError(t, err)

	sub, err := f.store.Entitlements().GetSubscription(ctx, f.orgID, 1)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, entity.PaymentStatusPending, sub.PaymentStatus)
	assert.Nil(t, sub.TrialEndAt)

	decision, err = f.resolver.CheckModuleAccess(ctx, f.orgID, 1)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, entity.ReasonSubscriptionInactive, decision.Reason)
}

func TestAddPlan_SoloAdmin(t *testing.T) {
	f := newFixture(t)
	_, err := f.plans.AddPlan(context.Background(), AddPlanInput{AdminID: f.userID, UserID: f.userID, PlanID: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAddPlan_CustomizadoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.addPlan(1, 42)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customized_module_ids", verr.Field)
}

func TestAddPlan_FalloRevierteTodo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.InjectFault("UpsertSubscription", errors.New("db caída"))

	_, err := f.addPlan(0)
	require.Error(t, err)

	perm, err := f.store.Entitlements().GetPermission(ctx, f.userID, f.orgID)
	require.NoError(t, err)
	assert.Nil(t, perm, "el permiso no debe sobrevivir al rollback")
	orgPlan, err := f.store.Entitlements().GetOrganizationPlan(ctx, f.orgID, false)
	require.NoError(t, err)
	assert.Nil(t, orgPlan, "la prueba no debe quedar consumida")

	_, err = f.addPlan(0)
	assert.NoError(t, err, "tras el rollback la prueba sigue disponible")
}

func TestAddPlan_UsuarioYOrganizacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.plans.AddPlan(ctx, AddPlanInput{AdminID: f.adminID, UserID: 999, PlanID: 1})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.plans.AddPlan(ctx, AddPlanInput{AdminID: f.adminID, UserID: f.userID, OrganizationID: f.orgID + 100, PlanID: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolver_GetAllowedModules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	modules, err := f.resolver.GetAllowedModules(ctx, f.orgID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, modules, "sin permiso la lista es vacía, no un error")

	_, err = f.addPlan(0, 2, 3)
	require.NoError(t, err)
	modules, err = f.resolver.GetAllowedModules(ctx, f.orgID, f.userID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{modules[0].ID, modules[1].ID, modules[2].ID})
}

func TestResolver_CheckModuleAccess_SinFila(t *testing.T) {
	f := newFixture(t)
	decision, err := f.resolver.CheckModuleAccess(context.Background(), f.orgID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.AccessDecision{Allowed: false, Reason: entity.ReasonModuleNotFound}, decision)

	err = f.resolver.RequireModuleAccess(context.Background(), f.orgID, 1)
	var denied *domain.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, entity.ReasonModuleNotFound, denied.Reason)
}

func TestResolver_MyPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.addPlan(0)
	require.NoError(t, err)

	mine, err := f.resolver.MyPlan(ctx, f.orgID, f.userID)
	require.NoError(t, err)
	require.NotNil(t, mine.PlanID)
	assert.Equal(t, int64(0), *mine.PlanID)
	assert.False(t, mine.TrialExpired)
	assert.Len(t, mine.Modules, 2)

	plans, err := f.resolver.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.True(t, plans[0].IsTrial)
	assert.False(t, plans[1].IsTrial)
}

func TestUpdatePaymentStatus_EstadoDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.plans.UpdatePaymentStatus(context.Background(), f.orgID, "Paid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
