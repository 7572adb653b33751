package entity

import "encoding/json"

// SkipKey centinela que reemplaza la respuesta yes/no de un campo omitido.
const SkipKey = "skip"

// LandingPage configuración de la portada.
type LandingPage struct {
	Thumbnail   *string `json:"thumbnail"`
	CTAPosition *string `json:"cta_position"`
}

// QuestionAnswer un campo del cuestionario, identificado por Label.
type QuestionAnswer struct {
	Label    string          `json:"label"`
	Key      string          `json:"yes_no"`
	Type     string          `json:"type"`
	Options  json.RawMessage `json:"value"`
	Required bool            `json:"required"`
	Order    int             `json:"order"`
}

// CaptureText texto de la pantalla de captura.
type CaptureText struct {
	TextArea *string `json:"text_area"`
}

// ContactFields qué datos de contacto se piden al cliente final.
type ContactFields struct {
	Name     *bool `json:"name"`
	Phone    *bool `json:"phone"`
	Whatsapp *bool `json:"whatsapp"`
	Email    *bool `json:"email"`
}

// Any informa si al menos un dato de contacto está activo.
func (c ContactFields) Any() bool {
	for _, f := range []*bool{c.Name, c.Phone, c.Whatsapp, c.Email} {
		if f != nil && *f {
			return true
		}
	}
	return false
}

// SegmentationField un campo de segmentación, identificado por Label.
type SegmentationField struct {
	Label    string   `json:"label"`
	Key      string   `json:"key"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// SkinGoalSelection objetivos de piel seleccionados.
type SkinGoalSelection struct {
	SelectedFields []string `json:"selected_fields"`
}

// FieldMap mapa campo -> valor usado por Summary/Routine y Suggest Product.
type FieldMap map[string]any
