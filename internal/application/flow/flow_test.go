package flow

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/memory"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrg  int64 = 10
	testUser int64 = 20
)

type fixture struct {
	store        *memory.Store
	service      *Service
	orchestrator *Orchestrator
}

func newFixture() *fixture {
	store := memory.NewStore()
	registry := NewRegistry(store.Steps(), store)
	return &fixture{
		store:        store,
		service:      NewService(store.Flows(), registry, logger.Nop()),
		orchestrator: NewOrchestrator(store.Flows(), registry),
	}
}

func (f *fixture) flow(t *testing.T, step entity.StepType) int64 {
	t.Helper()
	resp, err := f.service.SaveFlow(context.Background(), testOrg, dto.SaveFlowRequest{StepName: string(step)})
	require.NoError(t, err)
	return resp.ID
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func questionnaire(t *testing.T, body string) dto.QuestionnaireRequest {
	t.Helper()
	var req dto.QuestionnaireRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestSaveFlow_IDEstablePorOrganizacionYPaso(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.service.SaveFlow(ctx, testOrg, dto.SaveFlowRequest{StepName: "Capture", Description: "v1"})
	require.NoError(t, err)
	b, err := f.service.SaveFlow(ctx, testOrg, dto.SaveFlowRequest{StepName: "capture", Description: "v2", Skip: true})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "v2", b.Description)

	other, err := f.service.SaveFlow(ctx, testOrg+1, dto.SaveFlowRequest{StepName: "Capture"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, other.ID)

	flows, err := f.service.ListFlows(ctx, testOrg)
	require.NoError(t, err)
	assert.Len(t, flows, 1)

	_, err = f.service.SaveFlow(ctx, testOrg, dto.SaveFlowRequest{StepName: "Checkout"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveCapture_Idempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepCapture)
	req := dto.CaptureRequest{StepRequest: dto.StepRequest{FlowID: flowID}, TextArea: strPtr("Smile!")}

	first, err := f.service.SaveCapture(ctx, testOrg, testUser, req)
	require.NoError(t, err)
	second, err := f.service.SaveCapture(ctx, testOrg, testUser, req)
	require.NoError(t, err)

	assert.Equal(t, first.IDs, second.IDs)
	assert.Equal(t, 1, f.store.CountSteps())

	got, found, err := f.service.registry.Capture.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Smile!", *got.TextArea)
}

func TestSave_SkipLimpiaAunqueHayaContenido(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	contactID := f.flow(t, entity.StepContact)
	goalID := f.flow(t, entity.StepSkinGoal)
	summaryID := f.flow(t, entity.StepRoutine)

	_, err := f.service.SaveContact(ctx, testOrg, testUser, dto.ContactRequest{
		StepRequest: dto.StepRequest{FlowID: contactID},
		Fields:      entity.ContactFields{Email: boolPtr(true)},
	})
	require.NoError(t, err)
	_, err = f.service.SaveContact(ctx, testOrg, testUser, dto.ContactRequest{
		StepRequest: dto.StepRequest{FlowID: contactID, Skip: true},
		Fields:      entity.ContactFields{Phone: boolPtr(true)},
	})
	require.NoError(t, err)
	contact, _, err := f.service.registry.Contact.Get(ctx, contactID, testUser)
	require.NoError(t, err)
	assert.Equal(t, entity.ContactFields{}, contact)

	_, err = f.service.SaveSkinGoal(ctx, testOrg, testUser, dto.SkinGoalRequest{
		StepRequest: dto.StepRequest{FlowID: goalID, Skip: true}, SelectedFields: []string{"hydration"},
	})
	require.NoError(t, err)
	goal, found, err := f.service.registry.SkinGoal.Get(ctx, goalID, testUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{}, goal.SelectedFields)

	_, err = f.service.SaveSummary(ctx, testOrg, testUser, dto.FieldMapRequest{
		StepRequest: dto.StepRequest{FlowID: summaryID, Skip: true}, Fields: entity.FieldMap{"am": "cleanser"},
	})
	require.NoError(t, err)
	summary, found, err := f.service.registry.Summary.Get(ctx, summaryID, testUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.FieldMap{}, summary)
}

func TestSaveQuestionnaire_AgeLuegoSkip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepQuestionnaire)

	req := questionnaire(t, `{"fields": {"Age": {"yes_no": "yes", "type": "number", "keyValue": 25, "required": true}}}`)
	req.FlowID = flowID
	first, err := f.service.SaveQuestionnaire(ctx, testOrg, testUser, req)
	require.NoError(t, err)
	require.Len(t, first.IDs, 1)

	questions, _, err := f.service.registry.Questionnaire.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "yes", questions[0].Key)
	assert.JSONEq(t, `{"min_age": 25}`, string(questions[0].Options))

	skip := questionnaire(t, `{"skip": true, "fields": {"Age": {"yes_no": "yes", "keyValue": 30}}}`)
	skip.FlowID = flowID
	second, err := f.service.SaveQuestionnaire(ctx, testOrg, testUser, skip)
	require.NoError(t, err)
	assert.Equal(t, first.IDs, second.IDs, "la fila de Age se actualiza en sitio")

	questions, _, err = f.service.registry.Questionnaire.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Age", questions[0].Label)
	assert.Equal(t, entity.SkipKey, questions[0].Key)
	assert.Nil(t, questions[0].Options)
	assert.False(t, questions[0].Required)
}

func TestSaveQuestionnaire_SkipSinCamposLimpiaEtiquetasGuardadas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepQuestionnaire)

	req := questionnaire(t, `{"fields": {
		"Skin Type": {"yes_no": "yes", "keyValue": "dry"},
		"Goals": {"yes_no": "no", "type": "multi-select", "keyValue": ["glow"]}
	}}`)
	req.FlowID = flowID
	_, err := f.service.SaveQuestionnaire(ctx, testOrg, testUser, req)
	require.NoError(t, err)

	_, err = f.service.SaveQuestionnaire(ctx, testOrg, testUser, dto.QuestionnaireRequest{
		StepRequest: dto.StepRequest{FlowID: flowID, Skip: true},
	})
	require.NoError(t, err)

	questions, _, err := f.service.registry.Questionnaire.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Skin Type", questions[0].Label)
	assert.Equal(t, "Goals", questions[1].Label)
	for _, q := range questions {
		assert.Equal(t, entity.SkipKey, q.Key)
		assert.Nil(t, q.Options)
	}
	assert.Equal(t, 2, f.store.CountSteps())
}

func TestSaveQuestionnaire_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepQuestionnaire)

	_, err := f.service.SaveQuestionnaire(ctx, testOrg, testUser, dto.QuestionnaireRequest{StepRequest: dto.StepRequest{FlowID: flowID}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := questionnaire(t, `{"fields": {"Age": {"yes_no": "maybe"}}}`)
	req.FlowID = flowID
	_, err = f.service.SaveQuestionnaire(ctx, testOrg, testUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.store.CountSteps())
}

func TestSaveSegmentation_EtiquetaRepetida(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepSegmentation)

	fields := []entity.SegmentationField{
		{Label: "Edad", Key: "yes", Options: []string{"18-25"}},
		{Label: "Edad", Key: "no", Options: []string{"26-40"}},
	}
	_, err := f.service.SaveSegmentation(ctx, testOrg, testUser, dto.SegmentationRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Fields: fields})
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "fields", vErr.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.store.CountSteps())
}

func TestSaveQuestionnaire_ClaveRepetidaEnFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepQuestionnaire)

	req := questionnaire(t, `{"fields": {"Age": {"yes_no": "yes", "keyValue": "18"}, "Age": {"yes_no": "no"}}}`)
	req.FlowID = flowID
	_, err := f.service.SaveQuestionnaire(ctx, testOrg, testUser, req)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "error %v", err)
	assert.Equal(t, "fields", vErr.Field)
	assert.Equal(t, 0, f.store.CountSteps())
}

func TestSaveSegmentation_MenosEtiquetasBorraLasAnteriores(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepSegmentation)

	both := []entity.SegmentationField{{Label: "Edad", Key: "yes"}, {Label: "Ciudad", Key: "no"}}
	_, err := f.service.SaveSegmentation(ctx, testOrg, testUser, dto.SegmentationRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Fields: both})
	require.NoError(t, err)
	require.Equal(t, 2, f.store.CountSteps())

	_, err = f.service.SaveSegmentation(ctx, testOrg, testUser, dto.SegmentationRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Fields: both[:1]})
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.CountSteps())

	got, _, err := f.service.registry.Segmentation.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Edad", got[0].Label)
}

func TestSaveSegmentation_SkipCentinela(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepSegmentation)

	fields := []entity.SegmentationField{{Label: "Gender", Key: "yes", Options: []string{"f", "m"}, Required: true}}
	_, err := f.service.SaveSegmentation(ctx, testOrg, testUser, dto.SegmentationRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Fields: fields})
	require.NoError(t, err)
	_, err = f.service.SaveSegmentation(ctx, testOrg, testUser, dto.SegmentationRequest{StepRequest: dto.StepRequest{FlowID: flowID, Skip: true}, Fields: fields})
	require.NoError(t, err)

	got, _, err := f.service.registry.Segmentation.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	assert.Equal(t, []entity.SegmentationField{{Label: "Gender", Key: entity.SkipKey, Options: []string{}}}, got)
}

func TestSaveLanding_CreaUnaSolaVez(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	flowID := f.flow(t, entity.StepLandingPage)
	req := dto.LandingPageRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Thumbnail: strPtr("hero.png"), CTAPosition: strPtr("bottom")}

	first, err := f.service.SaveLanding(ctx, testOrg, testUser, req)
	require.NoError(t, err)

	req.Thumbnail = strPtr("other.png")
	second, err := f.service.SaveLanding(ctx, testOrg, testUser, req)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NotNil(t, second)
	assert.Equal(t, first.IDs, second.IDs, "el conflicto informa el id existente")

	got, _, err := f.service.registry.Landing.Get(ctx, flowID, testUser)
	require.NoError(t, err)
	assert.Equal(t, "hero.png", *got.Thumbnail)

	_, err = f.service.SaveLanding(ctx, testOrg, testUser+1, dto.LandingPageRequest{StepRequest: dto.StepRequest{FlowID: flowID}, Thumbnail: strPtr("x.png")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cta_position", verr.Field)
}

func TestSaveStep_FlujoAjenoOTipoIncorrecto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	captureID := f.flow(t, entity.StepCapture)

	_, err := f.service.SaveCapture(ctx, testOrg+1, testUser, dto.CaptureRequest{StepRequest: dto.StepRequest{FlowID: captureID}})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.service.SaveContact(ctx, testOrg, testUser, dto.ContactRequest{
		StepRequest: dto.StepRequest{FlowID: captureID}, Fields: entity.ContactFields{Name: boolPtr(true)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.service.SaveCapture(ctx, testOrg, testUser, dto.CaptureRequest{StepRequest: dto.StepRequest{FlowID: 999}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuestionsFromFields_DerivaOptions(t *testing.T) {
	req := questionnaire(t, `{"fields": {
		"Age": {"yes_no": "yes", "keyValue": 18},
		"Skin Type": {"yes_no": "yes", "keyValue": "oily"},
		"Concerns": {"yes_no": "yes", "type": "multi-select", "keyValue": ["acne"]},
		"Budget": {"yes_no": "no", "type": "select", "options": ["low", "high"]},
		"Notes": {"yes_no": "no", "type": "text", "options": ["ignored"]}
	}}`)

	qs := QuestionsFromFields(req.Fields)
	require.Len(t, qs, 5)
	assert.JSONEq(t, `{"min_age": 18}`, string(qs[0].Options))
	assert.Equal(t, "yes_no", qs[0].Type)
	assert.JSONEq(t, `{"skin_type": "oily"}`, string(qs[1].Options))
	assert.JSONEq(t, `{"selected": ["acne"]}`, string(qs[2].Options))
	assert.JSONEq(t, `["low", "high"]`, string(qs[3].Options))
	assert.Nil(t, qs[4].Options)
	for i, q := range qs {
		assert.Equal(t, i+1, q.Order)
	}
}

func TestGetFlowBundle_OrdenYClavesOmitidas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	landingID := f.flow(t, entity.StepLandingPage)
	captureID := f.flow(t, entity.StepCapture)
	f.flow(t, entity.StepSuggestProduct)

	_, err := f.service.SaveLanding(ctx, testOrg, testUser, dto.LandingPageRequest{
		StepRequest: dto.StepRequest{FlowID: landingID}, Thumbnail: strPtr("hero.png"), CTAPosition: strPtr("top"),
	})
	require.NoError(t, err)
	_, err = f.service.SaveCapture(ctx, testOrg, testUser, dto.CaptureRequest{StepRequest: dto.StepRequest{FlowID: captureID, Skip: true}})
	require.NoError(t, err)

	bundle, err := f.orchestrator.GetFlowBundle(ctx, testOrg, testUser)
	require.NoError(t, err)
	require.Len(t, bundle.Flows, 3)
	assert.Equal(t, string(entity.StepLandingPage), bundle.Flows[0].Flow.StepName)
	require.NotNil(t, bundle.Flows[0].LandingPage)
	assert.Equal(t, "top", *bundle.Flows[0].LandingPage.CTAPosition)
	require.NotNil(t, bundle.Flows[1].CapturePage)
	assert.Nil(t, bundle.Flows[1].CapturePage.TextArea)
	assert.Nil(t, bundle.Flows[2].SuggestProduct, "sin respuesta se omite la clave")

	other, err := f.orchestrator.GetFlowBundle(ctx, testOrg, testUser+1)
	require.NoError(t, err)
	assert.Nil(t, other.Flows[0].LandingPage, "las respuestas son por usuario")
}

func TestGetStep(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	goalID := f.flow(t, entity.StepSkinGoal)

	resp, err := f.service.GetStep(ctx, testOrg, testUser, "skin goal")
	require.NoError(t, err)
	assert.False(t, resp.Found)

	_, err = f.service.SaveSkinGoal(ctx, testOrg, testUser, dto.SkinGoalRequest{StepRequest: dto.StepRequest{FlowID: goalID}, SelectedFields: []string{"glow"}})
	require.NoError(t, err)
	resp, err = f.service.GetStep(ctx, testOrg, testUser, "Skin Goal")
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, entity.SkinGoalSelection{SelectedFields: []string{"glow"}}, resp.Data)

	_, err = f.service.GetStep(ctx, testOrg, testUser, "Capture")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
