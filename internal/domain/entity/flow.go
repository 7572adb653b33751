package entity

import (
	"strings"
	"time"
)

// StepType nombre de paso de un flujo. Conjunto cerrado.
type StepType string

const (
	StepLandingPage    StepType = "Landing Page"
	StepQuestionnaire  StepType = "Questionaire"
	StepCapture        StepType = "Capture"
	StepContact        StepType = "Contact"
	StepSegmentation   StepType = "Segmentation"
	StepSkinGoal       StepType = "Skin Goal"
	StepSummary        StepType = "Summary"
	StepRoutine        StepType = "Routine"
	StepSuggestProduct StepType = "Suggest Product"
)

// StepTypes todos los pasos válidos, en el orden en que los presenta el configurador.
var StepTypes = []StepType{
	StepLandingPage,
	StepQuestionnaire,
	StepCapture,
	StepContact,
	StepSegmentation,
	StepSkinGoal,
	StepSummary,
	StepRoutine,
	StepSuggestProduct,
}

// ParseStepType normaliza el nombre recibido del cliente (sin distinguir mayúsculas).
// Acepta "Questionnaire" como alias del nombre histórico "Questionaire".
func ParseStepType(s string) (StepType, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "Questionnaire") {
		return StepQuestionnaire, true
	}
	for _, st := range StepTypes {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Flow una fila por (organización, paso).
type Flow struct {
	ID             int64
	OrganizationID int64
	StepName       StepType
	Description    string
	IsActive       bool
	Skip           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StepKey identifica la respuesta de un usuario a un paso de un flujo.
type StepKey struct {
	FlowID         int64
	OrganizationID int64
	UserID         int64
}
