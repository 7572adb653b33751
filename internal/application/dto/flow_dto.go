package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
)

// SaveFlowRequest body para POST /api/flows: crea o actualiza el paso de la organización.
type SaveFlowRequest struct {
	StepName    string `json:"flow_name"`
	Description string `json:"description"`
	Skip        bool   `json:"skip"`
}

// FlowResponse paso configurado.
type FlowResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	StepName       string    `json:"flow_name"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"is_active"`
	Skip           bool      `json:"skip"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StepRequest campos comunes a todos los guardados de paso.
type StepRequest struct {
	FlowID int64 `json:"flow_id"`
	Skip   bool  `json:"skip"`
}

// StepSaveResponse ids de las filas escritas (una por etiqueta en pasos con etiqueta).
type StepSaveResponse struct {
	Message        string  `json:"message"`
	FlowID         int64   `json:"flow_id"`
	OrganizationID int64   `json:"organization_id"`
	IDs            []int64 `json:"ids"`
}

// LandingPageRequest body para POST /api/flows/landing-page.
type LandingPageRequest struct {
	StepRequest
	Thumbnail   *string `json:"thumbnail"`
	CTAPosition *string `json:"cta_position"`
}

// QuestionnaireFieldConfig configuración de un campo tal como la envía el configurador.
type QuestionnaireFieldConfig struct {
	YesNo    string          `json:"yes_no"`
	Type     string          `json:"type"`
	KeyValue json.RawMessage `json:"keyValue"`
	Options  json.RawMessage `json:"options"`
	Required bool            `json:"required"`
}

// QuestionnaireField campo con su etiqueta.
type QuestionnaireField struct {
	Label string
	QuestionnaireFieldConfig
}

// QuestionnaireFields objeto JSON etiqueta -> configuración. Conserva el orden de las claves,
// que define el display_order de cada pregunta.
type QuestionnaireFields []QuestionnaireField

// UnmarshalJSON recorre el objeto token a token para no perder el orden.
func (f *QuestionnaireFields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("fields: se esperaba un objeto")
	}
	out := QuestionnaireFields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("fields: clave inválida")
		}
		var cfg QuestionnaireFieldConfig
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Errorf("fields.%s: %w", label, err)
		}
		out = append(out, QuestionnaireField{Label: label, QuestionnaireFieldConfig: cfg})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = out
	return nil
}

// QuestionnaireRequest body para POST /api/flows/questionnaire.
type QuestionnaireRequest struct {
	StepRequest
	Fields QuestionnaireFields `json:"fields"`
}

// CaptureRequest body para POST /api/flows/capture.
type CaptureRequest struct {
	StepRequest
	TextArea *string `json:"text_area"`
}

// ContactRequest body para POST /api/flows/contact.
type ContactRequest struct {
	StepRequest
	Fields entity.ContactFields `json:"fields"`
}

// SegmentationRequest body para POST /api/flows/segmentation.
type SegmentationRequest struct {
	StepRequest
	Fields []entity.SegmentationField `json:"fields"`
}

// SkinGoalRequest body para POST /api/flows/skin-goal.
type SkinGoalRequest struct {
	StepRequest
	SelectedFields []string `json:"selected_fields"`
}

// FieldMapRequest body para POST /api/flows/summary y /api/flows/suggest-product.
type FieldMapRequest struct {
	StepRequest
	Fields entity.FieldMap `json:"fields"`
}

// StepPayloadResponse respuesta guardada de un paso (GET /api/flows/steps/:step).
type StepPayloadResponse struct {
	Flow  FlowResponse `json:"flow"`
	Found bool         `json:"found"`
	Data  any          `json:"data"`
}

// QuestionnaireBlock bloque "questionnaire" del bundle.
type QuestionnaireBlock struct {
	Questions []entity.QuestionAnswer `json:"questions"`
}

// ContactBlock bloque "contact_page" del bundle.
type ContactBlock struct {
	Fields entity.ContactFields `json:"fields"`
}

// SegmentationBlock bloque "segmentation" del bundle.
type SegmentationBlock struct {
	Fields []entity.SegmentationField `json:"fields"`
}

// FlowEntry un paso del bundle. Solo se incluye la clave del paso si hay respuesta guardada.
type FlowEntry struct {
	Flow           FlowResponse              `json:"flow"`
	LandingPage    *entity.LandingPage       `json:"landing_page,omitempty"`
	Questionnaire  *QuestionnaireBlock       `json:"questionnaire,omitempty"`
	CapturePage    *entity.CaptureText       `json:"capture_page,omitempty"`
	ContactPage    *ContactBlock             `json:"contact_page,omitempty"`
	Segmentation   *SegmentationBlock        `json:"segmentation,omitempty"`
	SkinGoal       *entity.SkinGoalSelection `json:"skin_goal,omitempty"`
	Summary        *entity.FieldMap          `json:"summary,omitempty"`
	SuggestProduct *entity.FieldMap          `json:"suggest_product,omitempty"`
}

// FlowBundle todos los pasos de la organización con las respuestas del usuario, en orden de definición.
type FlowBundle struct {
	OrganizationID int64       `json:"organization_id"`
	UserID         int64       `json:"user_id"`
	Flows          []FlowEntry `json:"flows"`
}
