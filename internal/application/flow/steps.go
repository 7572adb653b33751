package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// Registry un store por tipo de paso, más el despacho por nombre de flujo usado al armar el bundle.
type Registry struct {
	Landing        *Store[entity.LandingPage]
	Questionnaire  *Store[[]entity.QuestionAnswer]
	Capture        *Store[entity.CaptureText]
	Contact        *Store[entity.ContactFields]
	Segmentation   *Store[[]entity.SegmentationField]
	SkinGoal       *Store[entity.SkinGoalSelection]
	Summary        *Store[entity.FieldMap]
	SuggestProduct *Store[entity.FieldMap]

	readers map[entity.StepType]stepReader
}

type stepReader struct {
	attach func(ctx context.Context, entry *dto.FlowEntry, flowID, userID int64) error
	read   func(ctx context.Context, flowID, userID int64) (any, bool, error)
}

// NewRegistry instancia todos los stores sobre el mismo repositorio de respuestas.
func NewRegistry(steps repository.StepRepository, tx TxRunner) *Registry {
	r := &Registry{
		Landing:        NewStore(landingDescriptor(), steps, tx),
		Questionnaire:  NewStore(questionnaireDescriptor(), steps, tx),
		Capture:        NewStore(captureDescriptor(), steps, tx),
		Contact:        NewStore(contactDescriptor(), steps, tx),
		Segmentation:   NewStore(segmentationDescriptor(), steps, tx),
		SkinGoal:       NewStore(skinGoalDescriptor(), steps, tx),
		Summary:        NewStore(fieldMapDescriptor(entity.StepSummary, entity.StepRoutine), steps, tx),
		SuggestProduct: NewStore(fieldMapDescriptor(entity.StepSuggestProduct), steps, tx),
		readers:        make(map[entity.StepType]stepReader),
	}
	register(r, r.Landing, func(e *dto.FlowEntry, v entity.LandingPage) { e.LandingPage = &v })
	register(r, r.Questionnaire, func(e *dto.FlowEntry, v []entity.QuestionAnswer) {
		e.Questionnaire = &dto.QuestionnaireBlock{Questions: v}
	})
	register(r, r.Capture, func(e *dto.FlowEntry, v entity.CaptureText) { e.CapturePage = &v })
	register(r, r.Contact, func(e *dto.FlowEntry, v entity.ContactFields) { e.ContactPage = &dto.ContactBlock{Fields: v} })
	register(r, r.Segmentation, func(e *dto.FlowEntry, v []entity.SegmentationField) {
		e.Segmentation = &dto.SegmentationBlock{Fields: v}
	})
	register(r, r.SkinGoal, func(e *dto.FlowEntry, v entity.SkinGoalSelection) { e.SkinGoal = &v })
	register(r, r.Summary, func(e *dto.FlowEntry, v entity.FieldMap) { e.Summary = &v })
	register(r, r.SuggestProduct, func(e *dto.FlowEntry, v entity.FieldMap) { e.SuggestProduct = &v })
	return r
}

func register[T any](r *Registry, s *Store[T], set func(*dto.FlowEntry, T)) {
	reader := stepReader{
		attach: func(ctx context.Context, entry *dto.FlowEntry, flowID, userID int64) error {
			v, found, err := s.Get(ctx, flowID, userID)
			if err != nil || !found {
				return err
			}
			set(entry, v)
			return nil
		},
		read: func(ctx context.Context, flowID, userID int64) (any, bool, error) {
			v, found, err := s.Get(ctx, flowID, userID)
			return v, found, err
		},
	}
	for _, step := range s.desc.Steps {
		r.readers[step] = reader
	}
}

func (r *Registry) reader(step entity.StepType) (stepReader, bool) {
	rd, ok := r.readers[step]
	return rd, ok
}

func landingDescriptor() Descriptor[entity.LandingPage] {
	return Descriptor[entity.LandingPage]{
		Steps:  []entity.StepType{entity.StepLandingPage},
		Policy: CreateOnce,
		Empty:  func(entity.LandingPage) entity.LandingPage { return entity.LandingPage{} },
		Validate: func(v entity.LandingPage) error {
			if blank(v.Thumbnail) {
				return domain.Invalid("thumbnail", "obligatorio")
			}
			if blank(v.CTAPosition) {
				return domain.Invalid("cta_position", "obligatorio")
			}
			return nil
		},
		Split: single[entity.LandingPage],
		Join:  joinSingle[entity.LandingPage],
	}
}

func questionnaireDescriptor() Descriptor[[]entity.QuestionAnswer] {
	return Descriptor[[]entity.QuestionAnswer]{
		Steps:   []entity.StepType{entity.StepQuestionnaire},
		Labeled: true,
		IsZero:  func(v []entity.QuestionAnswer) bool { return len(v) == 0 },
		Empty: func(v []entity.QuestionAnswer) []entity.QuestionAnswer {
			out := make([]entity.QuestionAnswer, 0, len(v))
			for _, q := range v {
				out = append(out, entity.QuestionAnswer{Label: q.Label, Key: entity.SkipKey, Type: q.Type, Order: q.Order})
			}
			return out
		},
		Validate: func(v []entity.QuestionAnswer) error {
			if len(v) == 0 {
				return domain.Invalid("fields", "al menos un campo")
			}
			for _, q := range v {
				if err := validateLabeledKey("fields", q.Label, q.Key); err != nil {
					return err
				}
			}
			return nil
		},
		Split: func(v []entity.QuestionAnswer) []Part {
			parts := make([]Part, 0, len(v))
			for _, q := range v {
				parts = append(parts, Part{Label: q.Label, Order: q.Order, Value: q})
			}
			return parts
		},
		Join: func(records []repository.StepRecord) ([]entity.QuestionAnswer, error) {
			out := make([]entity.QuestionAnswer, 0, len(records))
			for _, rec := range records {
				var q entity.QuestionAnswer
				if err := json.Unmarshal(rec.Payload, &q); err != nil {
					return nil, err
				}
				if bytes.Equal(bytes.TrimSpace(q.Options), []byte("null")) {
					q.Options = nil
				}
				out = append(out, q)
			}
			return out, nil
		},
	}
}

func captureDescriptor() Descriptor[entity.CaptureText] {
	return Descriptor[entity.CaptureText]{
		Steps:    []entity.StepType{entity.StepCapture},
		Empty:    func(entity.CaptureText) entity.CaptureText { return entity.CaptureText{} },
		Validate: func(entity.CaptureText) error { return nil },
		Split:    single[entity.CaptureText],
		Join:     joinSingle[entity.CaptureText],
	}
}

func contactDescriptor() Descriptor[entity.ContactFields] {
	return Descriptor[entity.ContactFields]{
		Steps: []entity.StepType{entity.StepContact},
		Empty: func(entity.ContactFields) entity.ContactFields { return entity.ContactFields{} },
		Validate: func(v entity.ContactFields) error {
			if !v.Any() {
				return domain.Invalid("fields", "al menos un dato de contacto")
			}
			return nil
		},
		Split: single[entity.ContactFields],
		Join:  joinSingle[entity.ContactFields],
	}
}

func segmentationDescriptor() Descriptor[[]entity.SegmentationField] {
	return Descriptor[[]entity.SegmentationField]{
		Steps:   []entity.StepType{entity.StepSegmentation},
		Labeled: true,
		IsZero:  func(v []entity.SegmentationField) bool { return len(v) == 0 },
		Empty: func(v []entity.SegmentationField) []entity.SegmentationField {
			out := make([]entity.SegmentationField, 0, len(v))
			for _, f := range v {
				out = append(out, entity.SegmentationField{Label: f.Label, Key: entity.SkipKey, Options: []string{}})
			}
			return out
		},
		Validate: func(v []entity.SegmentationField) error {
			if len(v) == 0 {
				return domain.Invalid("fields", "al menos un campo")
			}
			for _, f := range v {
				if err := validateLabeledKey("fields", f.Label, f.Key); err != nil {
					return err
				}
			}
			return nil
		},
		Split: func(v []entity.SegmentationField) []Part {
			parts := make([]Part, 0, len(v))
			for i, f := range v {
				if f.Options == nil {
					f.Options = []string{}
				}
				parts = append(parts, Part{Label: f.Label, Order: i + 1, Value: f})
			}
			return parts
		},
		Join: func(records []repository.StepRecord) ([]entity.SegmentationField, error) {
			out := make([]entity.SegmentationField, 0, len(records))
			for _, rec := range records {
				var f entity.SegmentationField
				if err := json.Unmarshal(rec.Payload, &f); err != nil {
					return nil, err
				}
				if f.Options == nil {
					f.Options = []string{}
				}
				out = append(out, f)
			}
			return out, nil
		},
	}
}

func skinGoalDescriptor() Descriptor[entity.SkinGoalSelection] {
	return Descriptor[entity.SkinGoalSelection]{
		Steps: []entity.StepType{entity.StepSkinGoal},
		Empty: func(entity.SkinGoalSelection) entity.SkinGoalSelection {
			return entity.SkinGoalSelection{SelectedFields: []string{}}
		},
		Validate: func(entity.SkinGoalSelection) error { return nil },
		Split: func(v entity.SkinGoalSelection) []Part {
			if v.SelectedFields == nil {
				v.SelectedFields = []string{}
			}
			return single(v)
		},
		Join: func(records []repository.StepRecord) (entity.SkinGoalSelection, error) {
			v, err := joinSingle[entity.SkinGoalSelection](records)
			if v.SelectedFields == nil {
				v.SelectedFields = []string{}
			}
			return v, err
		},
	}
}

func fieldMapDescriptor(steps ...entity.StepType) Descriptor[entity.FieldMap] {
	return Descriptor[entity.FieldMap]{
		Steps:    steps,
		Empty:    func(entity.FieldMap) entity.FieldMap { return entity.FieldMap{} },
		Validate: func(entity.FieldMap) error { return nil },
		Split: func(v entity.FieldMap) []Part {
			if v == nil {
				v = entity.FieldMap{}
			}
			return single(v)
		},
		Join: func(records []repository.StepRecord) (entity.FieldMap, error) {
			v, err := joinSingle[entity.FieldMap](records)
			if v == nil {
				v = entity.FieldMap{}
			}
			return v, err
		},
	}
}

func single[T any](v T) []Part {
	return []Part{{Value: v}}
}

func joinSingle[T any](records []repository.StepRecord) (T, error) {
	var v T
	if len(records) == 0 {
		return v, nil
	}
	err := json.Unmarshal(records[len(records)-1].Payload, &v)
	return v, err
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func validateLabeledKey(field, label, key string) error {
	if strings.TrimSpace(label) == "" {
		return domain.Invalid(field, "cada campo necesita label")
	}
	if key != "yes" && key != "no" {
		return domain.Invalid(field, fmt.Sprintf("%s: yes_no debe ser yes o no", label))
	}
	return nil
}
