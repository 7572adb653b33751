package memory

import (
	"context"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

type appLinkRepo struct{ s *Store }

// AppLinks devuelve el repositorio de enlaces de traspaso.
func (s *Store) AppLinks() repository.AppLinkRepository { return appLinkRepo{s} }

func (r appLinkRepo) Upsert(_ context.Context, link *entity.AppLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	for id, cur := range r.s.data.links {
		if cur.UserID == link.UserID && cur.OrganizationID == link.OrganizationID && cur.ModuleID == link.ModuleID {
			link.ID, link.CreatedAt, link.UpdatedAt = id, cur.CreatedAt, now
			r.s.data.links[id] = *link
			return nil
		}
	}
	link.ID, link.CreatedAt, link.UpdatedAt = r.s.nextID(), now, now
	r.s.data.links[link.ID] = *link
	return nil
}

func (r appLinkRepo) GetByToken(_ context.Context, token string) (*entity.AppLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.data.links {
		if l.Token == token {
			return &l, nil
		}
	}
	return nil, nil
}
