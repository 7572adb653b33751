package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest body de alta y de edición (PUT reemplaza todos los campos).
// Los punteros distinguen "no enviado" de cero.
type ProductRequest struct {
	Name           string           `json:"name"`
	SKU            string           `json:"sku"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url,omitempty"`
	Amount         *decimal.Decimal `json:"amount"`
	AvailableStock *int             `json:"available_stock"`
	GST            *decimal.Decimal `json:"gst"`
	Routines       string           `json:"routines"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	Amount         decimal.Decimal `json:"amount"`
	AvailableStock int             `json:"available_stock"`
	GST            decimal.Decimal `json:"gst"`
	Routines       string          `json:"routines"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse catálogo de la organización ordenado por nombre.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
