package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/entitlement"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/memory"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Store
	codec   *jwt.Codec
	links   *LinkService
	plans   *entitlement.PlanActivationService
	flows   *flow.Service
	orgID   int64
	userID  int64
	session *jwt.Claims
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedModules(entity.Module{ID: 1, Name: "Flows"}, entity.Module{ID: 2, Name: "Analytics"})
	store.SeedPlans(entity.Plan{ID: 0, Name: "Trial", ModuleIDs: []int64{1}})

	org := &entity.Organization{Name: "Acme"}
	require.NoError(t, store.Organizations().Create(ctx, org))
	user := &entity.User{OrganizationID: org.ID, Email: "admin@acme.test", Role: entity.RoleAdmin}
	require.NoError(t, store.Users().Create(ctx, user))

	codec, err := jwt.NewCodec("secret-de-pruebas", "ibeauty-test")
	require.NoError(t, err)

	registry := flow.NewRegistry(store.Steps(), store)
	resolver := entitlement.NewResolver(store.Entitlements(), 0)
	f := &fixture{
		store:   store,
		codec:   codec,
		plans:   entitlement.NewPlanActivationService(store.Users(), store, config.PlanConfig{TrialDays: 15}, logger.Nop()),
		flows:   flow.NewService(store.Flows(), registry, logger.Nop()),
		orgID:   org.ID,
		userID:  user.ID,
		session: &jwt.Claims{UserID: user.ID, OrganizationID: org.ID, Purpose: jwt.PurposeSession},
	}
	f.links = NewLinkService(codec, store.AppLinks(), resolver, flow.NewOrchestrator(store.Flows(), registry),
		config.LinkConfig{BaseURL: "https://app.example.com", TTLMinutes: 10}, logger.Nop())
	return f
}

func (f *fixture) grantTrial(t *testing.T) {
	t.Helper()
	_, err := f.plans.AddPlan(context.Background(), entitlement.AddPlanInput{AdminID: f.userID, UserID: f.userID, PlanID: 0})
	require.NoError(t, err)
}

func tokenOf(t *testing.T, link string) string {
	t.Helper()
	const prefix = "https://app.example.com/session/"
	require.True(t, strings.HasPrefix(link, prefix), link)
	return strings.TrimPrefix(link, prefix)
}

func TestGenerateLink_Formato(t *testing.T) {
	f := newFixture(t)
	link, err := f.links.GenerateLink(context.Background(), f.userID, f.orgID, 1)
	require.NoError(t, err)

	claims, err := f.codec.VerifyPurpose(tokenOf(t, link), jwt.PurposeHandOff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ModuleID)
	assert.InDelta(t, float64(10*time.Minute), float64(claims.ExpiresIn(time.Now())), float64(5*time.Second))

	_, err = f.links.GenerateLink(context.Background(), f.userID, f.orgID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_DevuelveBundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.grantTrial(t)
	step, err := f.flows.SaveFlow(ctx, f.orgID, dto.SaveFlowRequest{StepName: "Capture"})
	require.NoError(t, err)
	text := "hola"
	_, err = f.flows.SaveCapture(ctx, f.orgID, f.userID, dto.CaptureRequest{StepRequest: dto.StepRequest{FlowID: step.ID}, TextArea: &text})
	require.NoError(t, err)

	link, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 1)
	require.NoError(t, err)

	bundle, err := f.links.Resolve(ctx, f.session, tokenOf(t, link))
	require.NoError(t, err)
	assert.Equal(t, f.orgID, bundle.OrganizationID)
	require.Len(t, bundle.Flows, 1)
	require.NotNil(t, bundle.Flows[0].CapturePage)
	assert.Equal(t, "hola", *bundle.Flows[0].CapturePage.TextArea)
}

func TestResolve_EnlaceReemplazado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.grantTrial(t)

	first, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 1)
	require.NoError(t, err)
	second, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 1)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = f.links.Resolve(ctx, f.session, tokenOf(t, first))
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	_, err = f.links.Resolve(ctx, f.session, tokenOf(t, second))
	assert.NoError(t, err)
}

func TestResolve_TokenInvalidoOExpirado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.links.Resolve(ctx, f.session, "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrLinkExpired)

	expired, err := f.codec.Issue(jwt.Claims{UserID: f.userID, OrganizationID: f.orgID, Purpose: jwt.PurposeHandOff, ModuleID: 1}, -time.Minute)
	require.NoError(t, err)
	_, err = f.links.Resolve(ctx, f.session, expired)
	assert.ErrorIs(t, err, domain.ErrLinkExpired)

	sessionToken, err := f.codec.Issue(*f.session, time.Hour)
	require.NoError(t, err)
	_, err = f.links.Resolve(ctx, f.session, sessionToken)
	assert.ErrorIs(t, err, domain.ErrLinkExpired, "un token de sesión no sirve como enlace")

	unknown, err := f.codec.Issue(jwt.Claims{UserID: f.userID, OrganizationID: f.orgID, Purpose: jwt.PurposeHandOff, ModuleID: 1}, time.Minute)
	require.NoError(t, err)
	_, err = f.links.Resolve(ctx, f.session, unknown)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	_, err = f.links.Resolve(ctx, nil, unknown)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestResolve_LlamadorDeOtraOrganizacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.grantTrial(t)

	link, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 1)
	require.NoError(t, err)

	outsider := &jwt.Claims{UserID: f.userID + 100, OrganizationID: f.orgID + 100, Purpose: jwt.PurposeSession}
	_, err = f.links.Resolve(ctx, outsider, tokenOf(t, link))
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	// Otro usuario de la misma organización sí lo resuelve.
	colleague := &jwt.Claims{UserID: f.userID + 1, OrganizationID: f.orgID, Purpose: jwt.PurposeSession}
	_, err = f.links.Resolve(ctx, colleague, tokenOf(t, link))
	assert.NoError(t, err)
}

func TestResolve_ModuloSinPermiso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.grantTrial(t)

	link, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 2)
	require.NoError(t, err)
	_, err = f.links.Resolve(ctx, f.session, tokenOf(t, link))
	assert.ErrorIs(t, err, domain.ErrModuleNotPermitted)
}

func TestResolve_PlanVencido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.grantTrial(t)

	past := time.Now().Add(-time.Hour)
	f.store.SetSubscription(entity.ModuleSubscription{OrganizationID: f.orgID, ModuleID: 1, PaymentStatus: entity.PaymentStatusSuccess, TrialEndAt: &past})

	link, err := f.links.GenerateLink(ctx, f.userID, f.orgID, 1)
	require.NoError(t, err)
	_, err = f.links.Resolve(ctx, f.session, tokenOf(t, link))
	var denied *domain.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, entity.ReasonPlanExpired, denied.Reason)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
