package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

type entitlementRepo struct{ s *Store }

// Entitlements devuelve el repositorio de módulos, planes, permisos y suscripciones.
func (s *Store) Entitlements() repository.EntitlementRepository { return entitlementRepo{s} }

func (r entitlementRepo) ListModules(_ context.Context) ([]entity.Module, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Module, 0, len(r.s.data.modules))
	for _, m := range r.s.data.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r entitlementRepo) ListModulesByIDs(_ context.Context, ids []int64) ([]entity.Module, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Module, 0, len(ids))
	for _, id := range entity.UnionIDs(ids) {
		if m, ok := r.s.data.modules[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r entitlementRepo) ListPlans(_ context.Context) ([]entity.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Plan, 0, len(r.s.data.plans))
	for _, p := range r.s.data.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r entitlementRepo) GetPlan(_ context.Context, id int64) (*entity.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r entitlementRepo) GetPermission(_ context.Context, userID, organizationID int64) (*entity.ModulePermission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.perms[pairKey{userID, organizationID}]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r entitlementRepo) UpsertPermission(_ context.Context, p *entity.ModulePermission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("UpsertPermission"); err != nil {
		return err
	}
	key := pairKey{p.UserID, p.OrganizationID}
	if current, ok := r.s.data.perms[key]; ok {
		p.ID, p.CreatedAt = current.ID, current.CreatedAt
	} else {
		p.ID = r.s.nextID()
	}
	stored := *p
	stored.DefaultModuleIDs = append([]int64(nil), p.DefaultModuleIDs...)
	stored.CustomizedModuleIDs = append([]int64(nil), p.CustomizedModuleIDs...)
	r.s.data.perms[key] = stored
	return nil
}

func (r entitlementRepo) GetOrganizationPlan(_ context.Context, organizationID int64, _ bool) (*entity.OrganizationPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.orgPlans[organizationID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r entitlementRepo) StartTrial(_ context.Context, organizationID, planID int64, start, end time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("StartTrial"); err != nil {
		return false, err
	}
	current, ok := r.s.data.orgPlans[organizationID]
	if ok && current.TrialStartAt != nil {
		return false, nil
	}
	r.s.data.orgPlans[organizationID] = entity.OrganizationPlan{
		OrganizationID: organizationID,
		PlanID:         planID,
		TrialStartAt:   &start,
		TrialEndAt:     &end,
		UpdatedAt:      start,
	}
	return true, nil
}

func (r entitlementRepo) SetOrganizationPlan(_ context.Context, organizationID, planID int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("SetOrganizationPlan"); err != nil {
		return err
	}
	current := r.s.data.orgPlans[organizationID]
	current.OrganizationID, current.PlanID, current.UpdatedAt = organizationID, planID, at
	r.s.data.orgPlans[organizationID] = current
	return nil
}

func (r entitlementRepo) GetSubscription(_ context.Context, organizationID, moduleID int64) (*entity.ModuleSubscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.data.subs[pairKey{organizationID, moduleID}]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (r entitlementRepo) UpsertSubscription(_ context.Context, sub *entity.ModuleSubscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("UpsertSubscription"); err != nil {
		return err
	}
	key := pairKey{sub.OrganizationID, sub.ModuleID}
	if current, ok := r.s.data.subs[key]; ok {
		sub.ID = current.ID
	} else {
		sub.ID = r.s.nextID()
	}
	r.s.data.subs[key] = *sub
	return nil
}

func (r entitlementRepo) UpdatePaymentStatus(_ context.Context, organizationID int64, status string, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for key, sub := range r.s.data.subs {
		if sub.OrganizationID != organizationID {
			continue
		}
		sub.PaymentStatus, sub.UpdatedAt = status, at
		r.s.data.subs[key] = sub
		n++
	}
	return n, nil
}

// SetSubscription reemplaza la suscripción tal cual (fixtures de tests).
func (s *Store) SetSubscription(sub entity.ModuleSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.ID == 0 {
		sub.ID = s.nextID()
	}
	s.data.subs[pairKey{sub.OrganizationID, sub.ModuleID}] = sub
}
