package entity

import "time"

// Organization representa un tenant del sistema: dueño de usuarios, flujos y suscripciones a módulos.
type Organization struct {
	ID        int64
	Name      string
	Website   string
	Email     string // canal de contacto
	CreatedAt time.Time
}
