package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

type productRepo struct{ s *Store }

// Products devuelve el repositorio del catálogo de productos.
func (s *Store) Products() repository.ProductRepository { return productRepo{s} }

// skuTaken requiere s.mu tomado.
func (r productRepo) skuTaken(p *entity.Product) bool {
	for id, cur := range r.s.data.products {
		if id != p.ID && cur.OrganizationID == p.OrganizationID && cur.SKU == p.SKU {
			return true
		}
	}
	return false
}

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("CreateProduct"); err != nil {
		return err
	}
	if r.skuTaken(p) {
		return domain.ErrConflict
	}
	p.ID = r.s.nextID()
	r.s.data.products[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(_ context.Context, organizationID, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.products[id]
	if !ok || p.OrganizationID != organizationID {
		return nil, nil
	}
	return &p, nil
}

func (r productRepo) ListByOrganization(_ context.Context, organizationID int64) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.s.data.products {
		if p.OrganizationID == organizationID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.data.products[p.ID]
	if !ok || cur.OrganizationID != p.OrganizationID {
		return domain.ErrNotFound
	}
	if r.skuTaken(p) {
		return domain.ErrConflict
	}
	p.IsActive, p.CreatedAt = cur.IsActive, cur.CreatedAt
	r.s.data.products[p.ID] = *p
	return nil
}

func (r productRepo) Delete(_ context.Context, organizationID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.products[id]
	if !ok || p.OrganizationID != organizationID {
		return domain.ErrNotFound
	}
	delete(r.s.data.products, id)
	return nil
}
