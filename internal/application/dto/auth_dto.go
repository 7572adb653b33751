package dto

import "time"

// SignupRequest body para POST /api/auth/signup.
type SignupRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Organization string `json:"organization"`
	Website      string `json:"website,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password ni token de verificación).
type UserResponse struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// SignupResponse usuario creado, pendiente de verificar.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse token de sesión + módulos permitidos.
type LoginResponse struct {
	Token          string           `json:"token"`
	ExpiresIn      int64            `json:"expires_in"` // segundos
	User           UserResponse     `json:"user"`
	AllowedModules []ModuleResponse `json:"allowed_modules"`
}
