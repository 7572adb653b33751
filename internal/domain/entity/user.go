package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema (pertenece a una Organization).
// El entitlement se evalúa por el par (usuario, organización).
type User struct {
	ID             int64
	OrganizationID int64
	Email          string
	PasswordHash   string // bcrypt hash
	FullName       string
	Role           string
	IsActive       bool // liveness: login lo enciende, logout lo apaga
	IsVerified     bool
	VerifyToken    string // vacío una vez verificado el email
	CreatedAt      time.Time
}

// IsAdmin informa si el usuario administra su organización.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
