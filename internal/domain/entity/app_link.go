package entity

import "time"

// AppLink registro efímero de traspaso: un token vigente por (usuario, organización, módulo).
// La vigencia real la marca el exp del token embebido, no IsActive.
type AppLink struct {
	ID             int64
	Token          string
	UserID         int64
	OrganizationID int64
	ModuleID       int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
