package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

var maxGST = decimal.NewFromInt(100)

// UseCase CRUD del catálogo de productos, siempre dentro de la organización del llamador.
type UseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, log: log.Component("product"), now: time.Now}
}

// Create da de alta un producto activo. SKU repetido en la organización = ErrConflict.
func (uc *UseCase) Create(ctx context.Context, organizationID int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	p.OrganizationID = organizationID
	p.IsActive = true
	p.CreatedAt, p.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("product: crear: %w", err)
	}
	uc.log.Info().Int64("organization_id", organizationID).Int64("product_id", p.ID).Str("sku", p.SKU).Msg("producto creado")
	out := toProductResponse(p)
	return &out, nil
}

// Get devuelve un producto de la organización o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, organizationID, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("product: obtener: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// List catálogo de la organización ordenado por nombre.
func (uc *UseCase) List(ctx context.Context, organizationID int64) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("product: listar: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// Update reemplaza los campos editables; is_active y created_at se conservan.
func (uc *UseCase) Update(ctx context.Context, organizationID, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("product: obtener: %w", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	p.ID, p.OrganizationID = id, organizationID
	p.IsActive, p.CreatedAt = current.IsActive, current.CreatedAt
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("product: actualizar: %w", err)
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete borra un producto de la organización.
func (uc *UseCase) Delete(ctx context.Context, organizationID, id int64) error {
	if err := uc.repo.Delete(ctx, organizationID, id); err != nil {
		return fmt.Errorf("product: borrar: %w", err)
	}
	uc.log.Info().Int64("organization_id", organizationID).Int64("product_id", id).Msg("producto borrado")
	return nil
}

// fromRequest valida el body: todos los campos salvo image_url son obligatorios.
func fromRequest(in dto.ProductRequest) (*entity.Product, error) {
	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		SKU:         strings.TrimSpace(in.SKU),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Routines:    strings.TrimSpace(in.Routines),
	}
	switch {
	case p.Name == "":
		return nil, domain.Invalid("name", "requerido")
	case p.SKU == "":
		return nil, domain.Invalid("sku", "requerido")
	case p.Description == "":
		return nil, domain.Invalid("description", "requerido")
	case p.Routines == "":
		return nil, domain.Invalid("routines", "requerido")
	case in.Amount == nil:
		return nil, domain.Invalid("amount", "requerido")
	case in.Amount.IsNegative():
		return nil, domain.Invalid("amount", "no puede ser negativo")
	case in.AvailableStock == nil:
		return nil, domain.Invalid("available_stock", "requerido")
	case *in.AvailableStock < 0:
		return nil, domain.Invalid("available_stock", "no puede ser negativo")
	case in.GST == nil:
		return nil, domain.Invalid("gst", "requerido")
	case in.GST.IsNegative() || in.GST.GreaterThan(maxGST):
		return nil, domain.Invalid("gst", "porcentaje entre 0 y 100")
	}
	p.Amount = in.Amount.Round(2)
	p.AvailableStock = *in.AvailableStock
	p.GST = in.GST.Round(2)
	return p, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		SKU:            p.SKU,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		Amount:         p.Amount,
		AvailableStock: p.AvailableStock,
		GST:            p.GST,
		Routines:       p.Routines,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
