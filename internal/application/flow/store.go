package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// Store guarda y lee las respuestas de un tipo de paso, clave (flow, user, label).
type Store[T any] struct {
	desc  Descriptor[T]
	steps repository.StepRepository
	tx    TxRunner
	now   func() time.Time
}

// NewStore instancia el store de un tipo de paso.
func NewStore[T any](desc Descriptor[T], steps repository.StepRepository, tx TxRunner) *Store[T] {
	return &Store[T]{desc: desc, steps: steps, tx: tx, now: time.Now}
}

// Step nombre principal del paso.
func (s *Store[T]) Step() entity.StepType { return s.desc.Steps[0] }

// Accepts informa si el store atiende flujos con ese nombre.
func (s *Store[T]) Accepts(step entity.StepType) bool { return s.desc.accepts(step) }

// Upsert escribe la respuesta. Con skip el payload se reemplaza por el centinela del tipo.
// Devuelve los ids de las filas escritas; con ErrConflict devuelve el id ya existente.
func (s *Store[T]) Upsert(ctx context.Context, key entity.StepKey, payload T, skip bool) ([]int64, error) {
	if skip {
		if s.desc.Labeled && s.desc.IsZero(payload) {
			current, found, err := s.Get(ctx, key.FlowID, key.UserID)
			if err != nil {
				return nil, err
			}
			if !found {
				return []int64{}, nil
			}
			payload = current
		}
		payload = s.desc.Empty(payload)
	} else if err := s.desc.Validate(payload); err != nil {
		return nil, err
	}

	parts := s.desc.Split(payload)
	labels := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if _, dup := seen[p.Label]; dup {
			return nil, domain.Invalid("fields", fmt.Sprintf("etiqueta repetida %q", p.Label))
		}
		seen[p.Label] = struct{}{}
		labels = append(labels, p.Label)
	}

	now := s.now().UTC()
	records := make([]*repository.StepRecord, 0, len(parts))
	for _, p := range parts {
		raw, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("flow: serializar %s: %w", s.Step(), err)
		}
		records = append(records, &repository.StepRecord{
			FlowID:         key.FlowID,
			OrganizationID: key.OrganizationID,
			UserID:         key.UserID,
			StepType:       s.Step(),
			Label:          p.Label,
			Order:          p.Order,
			Payload:        raw,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	ids := make([]int64, 0, len(records))
	err := s.tx.RunSteps(ctx, func(repo repository.StepRepository) error {
		for _, rec := range records {
			if s.desc.Policy == CreateOnce {
				inserted, err := repo.InsertOnce(ctx, rec)
				if err != nil {
					return fmt.Errorf("flow: insertar %s: %w", s.Step(), err)
				}
				ids = append(ids, rec.ID)
				if !inserted {
					return domain.ErrConflict
				}
				continue
			}
			if err := repo.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("flow: guardar %s: %w", s.Step(), err)
			}
			ids = append(ids, rec.ID)
		}
		if s.desc.Labeled {
			// La respuesta reemplaza a la anterior: las etiquetas que ya no llegan se borran.
			if _, err := repo.DeleteLabelsExcept(ctx, key.FlowID, key.UserID, labels); err != nil {
				return fmt.Errorf("flow: limpiar %s: %w", s.Step(), err)
			}
		}
		return nil
	})
	if err != nil {
		return ids, err
	}
	return ids, nil
}

// Get recompone la respuesta guardada. found=false si no hay filas.
func (s *Store[T]) Get(ctx context.Context, flowID, userID int64) (T, bool, error) {
	var zero T
	records, err := s.steps.ListByFlowAndUser(ctx, flowID, userID)
	if err != nil {
		return zero, false, fmt.Errorf("flow: leer %s: %w", s.Step(), err)
	}
	if len(records) == 0 {
		return zero, false, nil
	}
	v, err := s.desc.Join(records)
	if err != nil {
		return zero, false, fmt.Errorf("flow: recomponer %s: %w", s.Step(), err)
	}
	return v, true, nil
}
