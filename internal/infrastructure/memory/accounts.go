package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

type organizationRepo struct{ s *Store }

// Organizations devuelve el repositorio de organizaciones.
func (s *Store) Organizations() repository.OrganizationRepository { return organizationRepo{s} }

func (r organizationRepo) Create(_ context.Context, org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("CreateOrganization"); err != nil {
		return err
	}
	org.ID = r.s.nextID()
	r.s.data.orgs[org.ID] = *org
	return nil
}

func (r organizationRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	org, ok := r.s.data.orgs[id]
	if !ok {
		return nil, nil
	}
	return &org, nil
}

type userRepo struct{ s *Store }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("CreateUser"); err != nil {
		return err
	}
	for _, u := range r.s.data.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.s.nextID()
	r.s.data.users[user.ID] = *user
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) ListByOrganization(_ context.Context, organizationID int64) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0)
	for _, u := range r.s.data.users {
		if u.OrganizationID == organizationID {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r userRepo) GetByVerifyToken(_ context.Context, token string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if token == "" {
		return nil, nil
	}
	for _, u := range r.s.data.users {
		if u.VerifyToken == token {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) MarkVerified(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsVerified, u.IsActive, u.VerifyToken = true, true, ""
	r.s.data.users[id] = u
	return nil
}

func (r userRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	r.s.data.users[id] = u
	return nil
}
