package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de una organización, sugerido en el paso suggest-product.
type Product struct {
	ID             int64
	OrganizationID int64
	Name           string
	SKU            string // único por organización
	Description    string
	ImageURL       string // URL ya publicada; el catálogo no guarda archivos
	Amount         decimal.Decimal
	AvailableStock int
	GST            decimal.Decimal // porcentaje
	Routines       string // ej. "Morning", "Evening"
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
