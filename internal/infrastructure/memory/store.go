package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// Store implementación en memoria de todos los repositorios, para tests y ejecución local sin Postgres.
// Las transacciones se serializan y se deshacen restaurando una copia del estado.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	seq    int64
	data   state
	faults map[string]error
}

type pairKey [2]int64

type state struct {
	orgs     map[int64]entity.Organization
	users    map[int64]entity.User
	modules  map[int64]entity.Module
	plans    map[int64]entity.Plan
	perms    map[pairKey]entity.ModulePermission   // (user, org)
	orgPlans map[int64]entity.OrganizationPlan
	subs     map[pairKey]entity.ModuleSubscription // (org, module)
	flows    map[int64]entity.Flow
	steps    map[int64]repository.StepRecord
	links    map[int64]entity.AppLink
	products map[int64]entity.Product
}

func newState() state {
	return state{
		orgs:     make(map[int64]entity.Organization),
		users:    make(map[int64]entity.User),
		modules:  make(map[int64]entity.Module),
		plans:    make(map[int64]entity.Plan),
		perms:    make(map[pairKey]entity.ModulePermission),
		orgPlans: make(map[int64]entity.OrganizationPlan),
		subs:     make(map[pairKey]entity.ModuleSubscription),
		flows:    make(map[int64]entity.Flow),
		steps:    make(map[int64]repository.StepRecord),
		links:    make(map[int64]entity.AppLink),
		products: make(map[int64]entity.Product),
	}
}

// clone copia los mapas. Los valores guardados nunca se mutan en sitio, así que basta una copia superficial.
func (st state) clone() state {
	return state{
		orgs:     cloneMap(st.orgs),
		users:    cloneMap(st.users),
		modules:  cloneMap(st.modules),
		plans:    cloneMap(st.plans),
		perms:    cloneMap(st.perms),
		orgPlans: cloneMap(st.orgPlans),
		subs:     cloneMap(st.subs),
		flows:    cloneMap(st.flows),
		steps:    cloneMap(st.steps),
		links:    cloneMap(st.links),
		products: cloneMap(st.products),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState(), faults: make(map[string]error)}
}

// InjectFault hace que la próxima llamada a op (nombre del método, ej. "UpsertSubscription") devuelva err.
func (s *Store) InjectFault(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// fault consume el fallo inyectado para op. Requiere s.mu tomado.
func (s *Store) fault(op string) error {
	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)
		return err
	}
	return nil
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// SeedModules carga entradas del catálogo con sus ids.
func (s *Store) SeedModules(modules ...entity.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range modules {
		s.data.modules[m.ID] = m
	}
}

// SeedPlans carga planes con sus ids (0 = prueba gratuita).
func (s *Store) SeedPlans(plans ...entity.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range plans {
		p.ModuleIDs = append([]int64(nil), p.ModuleIDs...)
		s.data.plans[p.ID] = p
	}
}

func (s *Store) run(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	seq := s.seq
	s.mu.Unlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.seq = seq
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunEntitlements implementa entitlement.TxRunner.
func (s *Store) RunEntitlements(_ context.Context, fn func(repo repository.EntitlementRepository) error) error {
	return s.run(func() error { return fn(s.Entitlements()) })
}

// RunSteps implementa flow.TxRunner.
func (s *Store) RunSteps(_ context.Context, fn func(repo repository.StepRepository) error) error {
	return s.run(func() error { return fn(s.Steps()) })
}

// RunAccounts implementa auth.TxRunner.
func (s *Store) RunAccounts(_ context.Context, fn func(orgs repository.OrganizationRepository, users repository.UserRepository) error) error {
	return s.run(func() error { return fn(s.Organizations(), s.Users()) })
}
