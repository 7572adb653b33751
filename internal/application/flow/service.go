package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// Tipos de campo del cuestionario con tratamiento especial de options.
const (
	fieldTypeYesNo       = "yes_no"
	fieldTypeSelect      = "select"
	fieldTypeMultiSelect = "multi-select"
)

// Service configura los pasos de una organización y guarda las respuestas de cada paso.
type Service struct {
	flows    repository.FlowRepository
	registry *Registry
	log      *logger.Logger
	now      func() time.Time
}

// NewService construye el servicio de flujos.
func NewService(flows repository.FlowRepository, registry *Registry, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{flows: flows, registry: registry, log: log.Component("flow"), now: time.Now}
}

// SaveFlow crea o actualiza el paso (organization, step_name). El id es estable entre llamadas.
func (s *Service) SaveFlow(ctx context.Context, organizationID int64, in dto.SaveFlowRequest) (*dto.FlowResponse, error) {
	step, ok := entity.ParseStepType(in.StepName)
	if !ok {
		return nil, domain.Invalid("flow_name", fmt.Sprintf("paso desconocido %q", in.StepName))
	}
	now := s.now().UTC()
	f := &entity.Flow{
		OrganizationID: organizationID,
		StepName:       step,
		Description:    in.Description,
		IsActive:       true,
		Skip:           in.Skip,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.flows.Upsert(ctx, f); err != nil {
		return nil, fmt.Errorf("flow: guardar paso: %w", err)
	}
	s.log.Debug().Int64("organization_id", organizationID).Int64("flow_id", f.ID).Str("step", string(step)).Msg("paso guardado")
	resp := ToFlowResponse(f)
	return &resp, nil
}

// ListFlows pasos de la organización en orden de definición.
func (s *Service) ListFlows(ctx context.Context, organizationID int64) ([]dto.FlowResponse, error) {
	flows, err := s.flows.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("flow: listar: %w", err)
	}
	out := make([]dto.FlowResponse, 0, len(flows))
	for _, f := range flows {
		out = append(out, ToFlowResponse(f))
	}
	return out, nil
}

// SaveLanding guarda la portada. Solo se crea una vez por (flow, user): la segunda escritura es ErrConflict.
func (s *Service) SaveLanding(ctx context.Context, organizationID, userID int64, in dto.LandingPageRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Landing, organizationID, userID, in.StepRequest,
		entity.LandingPage{Thumbnail: in.Thumbnail, CTAPosition: in.CTAPosition})
}

// SaveQuestionnaire guarda una fila por etiqueta, en el orden en que llegan los campos.
func (s *Service) SaveQuestionnaire(ctx context.Context, organizationID, userID int64, in dto.QuestionnaireRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Questionnaire, organizationID, userID, in.StepRequest, QuestionsFromFields(in.Fields))
}

// SaveCapture guarda el texto de captura.
func (s *Service) SaveCapture(ctx context.Context, organizationID, userID int64, in dto.CaptureRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Capture, organizationID, userID, in.StepRequest, entity.CaptureText{TextArea: in.TextArea})
}

// SaveContact guarda qué datos de contacto se piden.
func (s *Service) SaveContact(ctx context.Context, organizationID, userID int64, in dto.ContactRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Contact, organizationID, userID, in.StepRequest, in.Fields)
}

// SaveSegmentation guarda una fila por etiqueta.
func (s *Service) SaveSegmentation(ctx context.Context, organizationID, userID int64, in dto.SegmentationRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Segmentation, organizationID, userID, in.StepRequest, in.Fields)
}

// SaveSkinGoal guarda los objetivos seleccionados.
func (s *Service) SaveSkinGoal(ctx context.Context, organizationID, userID int64, in dto.SkinGoalRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.SkinGoal, organizationID, userID, in.StepRequest,
		entity.SkinGoalSelection{SelectedFields: in.SelectedFields})
}

// SaveSummary guarda el mapa de campos de Summary o Routine.
func (s *Service) SaveSummary(ctx context.Context, organizationID, userID int64, in dto.FieldMapRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.Summary, organizationID, userID, in.StepRequest, in.Fields)
}

// SaveSuggestProduct guarda el mapa de campos de sugerencia de producto.
func (s *Service) SaveSuggestProduct(ctx context.Context, organizationID, userID int64, in dto.FieldMapRequest) (*dto.StepSaveResponse, error) {
	return saveStep(ctx, s, s.registry.SuggestProduct, organizationID, userID, in.StepRequest, in.Fields)
}

// GetStep respuesta guardada del usuario para el paso de ese tipo en su organización.
func (s *Service) GetStep(ctx context.Context, organizationID, userID int64, stepName string) (*dto.StepPayloadResponse, error) {
	step, ok := entity.ParseStepType(stepName)
	if !ok {
		return nil, domain.Invalid("step", fmt.Sprintf("paso desconocido %q", stepName))
	}
	f, err := s.flows.GetByOrganizationAndStep(ctx, organizationID, step)
	if err != nil {
		return nil, fmt.Errorf("flow: buscar paso: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	rd, ok := s.registry.reader(step)
	if !ok {
		return nil, domain.ErrNotFound
	}
	v, found, err := rd.read(ctx, f.ID, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StepPayloadResponse{Flow: ToFlowResponse(f), Found: found}
	if found {
		resp.Data = v
	}
	return resp, nil
}

func saveStep[T any](ctx context.Context, s *Service, store *Store[T], organizationID, userID int64, req dto.StepRequest, payload T) (*dto.StepSaveResponse, error) {
	if req.FlowID <= 0 {
		return nil, domain.Invalid("flow_id", "obligatorio")
	}
	f, err := s.flows.GetByID(ctx, req.FlowID)
	if err != nil {
		return nil, fmt.Errorf("flow: buscar flujo: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.OrganizationID != organizationID {
		return nil, domain.ErrUnauthorized
	}
	if !store.Accepts(f.StepName) {
		return nil, domain.Invalid("flow_id", fmt.Sprintf("el flujo es de tipo %q, no %q", f.StepName, store.Step()))
	}

	key := entity.StepKey{FlowID: f.ID, OrganizationID: f.OrganizationID, UserID: userID}
	ids, err := store.Upsert(ctx, key, payload, req.Skip)
	resp := &dto.StepSaveResponse{
		Message:        fmt.Sprintf("%s saved", f.StepName),
		FlowID:         f.ID,
		OrganizationID: f.OrganizationID,
		IDs:            ids,
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			resp.Message = fmt.Sprintf("%s already exists", f.StepName)
			return resp, err
		}
		return nil, err
	}
	s.log.Debug().Int64("flow_id", f.ID).Int64("user_id", userID).Bool("skip", req.Skip).Int("rows", len(ids)).Msg("respuesta guardada")
	return resp, nil
}

// QuestionsFromFields convierte los campos del configurador en preguntas. El orden de llegada es el display_order.
// "Age" y "Skin Type" guardan su valor dentro de options; multi-select guarda la selección; select sus opciones.
func QuestionsFromFields(fields dto.QuestionnaireFields) []entity.QuestionAnswer {
	out := make([]entity.QuestionAnswer, 0, len(fields))
	for i, f := range fields {
		typ := f.Type
		if typ == "" {
			typ = fieldTypeYesNo
		}
		var options json.RawMessage
		switch {
		case f.Label == "Age":
			options = wrapValue("min_age", f.KeyValue, "null")
		case f.Label == "Skin Type":
			options = wrapValue("skin_type", f.KeyValue, "null")
		case typ == fieldTypeMultiSelect:
			options = wrapValue("selected", f.KeyValue, "[]")
		case typ == fieldTypeSelect && len(f.Options) > 0 && string(f.Options) != "null":
			options = f.Options
		}
		out = append(out, entity.QuestionAnswer{
			Label:    f.Label,
			Key:      f.YesNo,
			Type:     typ,
			Options:  options,
			Required: f.Required,
			Order:    i + 1,
		})
	}
	return out
}

func wrapValue(key string, v json.RawMessage, fallback string) json.RawMessage {
	if len(v) == 0 {
		v = json.RawMessage(fallback)
	}
	raw, err := json.Marshal(map[string]json.RawMessage{key: v})
	if err != nil {
		return nil
	}
	return raw
}

// ToFlowResponse mapea la entidad a DTO.
func ToFlowResponse(f *entity.Flow) dto.FlowResponse {
	return dto.FlowResponse{
		ID:             f.ID,
		OrganizationID: f.OrganizationID,
		StepName:       string(f.StepName),
		Description:    f.Description,
		IsActive:       f.IsActive,
		Skip:           f.Skip,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
