package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

type flowRepo struct{ s *Store }

// Flows devuelve el repositorio de pasos configurados.
func (s *Store) Flows() repository.FlowRepository { return flowRepo{s} }

func (r flowRepo) Upsert(_ context.Context, f *entity.Flow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	for id, current := range r.s.data.flows {
		if current.OrganizationID == f.OrganizationID && current.StepName == f.StepName {
			f.ID, f.CreatedAt, f.UpdatedAt = id, current.CreatedAt, now
			r.s.data.flows[id] = *f
			return nil
		}
	}
	f.ID = r.s.nextID()
	f.CreatedAt, f.UpdatedAt = now, now
	r.s.data.flows[f.ID] = *f
	return nil
}

func (r flowRepo) GetByID(_ context.Context, id int64) (*entity.Flow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.data.flows[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r flowRepo) GetByOrganizationAndStep(_ context.Context, organizationID int64, step entity.StepType) (*entity.Flow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.data.flows {
		if f.OrganizationID == organizationID && f.StepName == step {
			return &f, nil
		}
	}
	return nil, nil
}

func (r flowRepo) ListByOrganization(_ context.Context, organizationID int64) ([]*entity.Flow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Flow, 0)
	for _, f := range r.s.data.flows {
		if f.OrganizationID == organizationID {
			f := f
			out = append(out, &f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stepRepo struct{ s *Store }

// Steps devuelve el repositorio de respuestas por paso.
func (s *Store) Steps() repository.StepRepository { return stepRepo{s} }

// find devuelve la fila de (flow, user, label). Requiere s.mu tomado.
func (r stepRepo) find(rec *repository.StepRecord) (repository.StepRecord, bool) {
	for _, cur := range r.s.data.steps {
		if cur.FlowID == rec.FlowID && cur.UserID == rec.UserID && cur.Label == rec.Label {
			return cur, true
		}
	}
	return repository.StepRecord{}, false
}

func (r stepRepo) store(rec *repository.StepRecord) {
	stored := *rec
	stored.Payload = append([]byte(nil), rec.Payload...)
	r.s.data.steps[rec.ID] = stored
}

func (r stepRepo) Upsert(_ context.Context, rec *repository.StepRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("UpsertStep"); err != nil {
		return err
	}
	now := time.Now().UTC()
	if cur, ok := r.find(rec); ok {
		rec.ID, rec.CreatedAt = cur.ID, cur.CreatedAt
	} else {
		rec.ID, rec.CreatedAt = r.s.nextID(), now
	}
	rec.UpdatedAt = now
	r.store(rec)
	return nil
}

func (r stepRepo) InsertOnce(_ context.Context, rec *repository.StepRecord) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("InsertStepOnce"); err != nil {
		return false, err
	}
	if cur, ok := r.find(rec); ok {
		rec.ID = cur.ID
		return false, nil
	}
	now := time.Now().UTC()
	rec.ID, rec.CreatedAt, rec.UpdatedAt = r.s.nextID(), now, now
	r.store(rec)
	return true, nil
}

func (r stepRepo) DeleteLabelsExcept(_ context.Context, flowID, userID int64, keep []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("DeleteStepLabels"); err != nil {
		return 0, err
	}
	kept := make(map[string]struct{}, len(keep))
	for _, l := range keep {
		kept[l] = struct{}{}
	}
	var n int64
	for id, rec := range r.s.data.steps {
		if rec.FlowID != flowID || rec.UserID != userID {
			continue
		}
		if _, ok := kept[rec.Label]; !ok {
			delete(r.s.data.steps, id)
			n++
		}
	}
	return n, nil
}

func (r stepRepo) ListByFlowAndUser(_ context.Context, flowID, userID int64) ([]repository.StepRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]repository.StepRecord, 0)
	for _, rec := range r.s.data.steps {
		if rec.FlowID == flowID && rec.UserID == userID {
			rec.Payload = append([]byte(nil), rec.Payload...)
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CountSteps número total de filas de respuesta (tests de idempotencia).
func (s *Store) CountSteps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.steps)
}
