package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Estados de la redirección de verificación.
const (
	VerifyStatusSuccess = "success"
	VerifyStatusInvalid = "invalid"
)

// Config parámetros del caso de uso que vienen de config.Config.
type Config struct {
	SessionTTL    time.Duration
	VerifyBaseURL string
	FrontendURL   string
}

// AuthUseCase casos de uso de cuentas: registro, verificación, login, logout y consulta de usuario.
type AuthUseCase struct {
	users   repository.UserRepository
	tx      TxRunner
	codec   *jwt.Codec
	modules ModuleLister
	mailer  Mailer       // nil = sin envío de correos
	revoker TokenRevoker // nil = logout no revoca el token
	cfg     Config
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tx TxRunner, codec *jwt.Codec, modules ModuleLister, mailer Mailer, revoker TokenRevoker, cfg Config, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		users:   users,
		tx:      tx,
		codec:   codec,
		modules: modules,
		mailer:  mailer,
		revoker: revoker,
		cfg:     cfg,
		log:     log.Component("auth"),
	}
}

// Signup crea organización y usuario inactivo sin verificar, y envía el correo de verificación.
// Un fallo al enviar el correo no revierte el registro.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	orgName := strings.TrimSpace(in.Organization)
	if first == "" || last == "" || email == "" || in.Password == "" || orgName == "" {
		return nil, domain.Invalid("", "Missing required fields")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.Invalid("email", "formato inválido")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.Invalid("password", fmt.Sprintf("mínimo %d caracteres", minPasswordLength))
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     first + " " + last,
		Role:         entity.RoleAdmin, // quien crea la organización la administra
		VerifyToken:  randstr.Hex(32),
		CreatedAt:    now,
	}
	err = uc.tx.RunAccounts(ctx, func(orgs repository.OrganizationRepository, users repository.UserRepository) error {
		org := &entity.Organization{Name: orgName, Website: strings.TrimSpace(in.Website), Email: email, CreatedAt: now}
		if err := orgs.Create(ctx, org); err != nil {
			return err
		}
		user.OrganizationID = org.ID
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	if uc.mailer != nil {
		link := fmt.Sprintf("%s/%s", uc.cfg.VerifyBaseURL, user.VerifyToken)
		if err := uc.mailer.SendVerification(ctx, user.Email, user.FullName, link); err != nil {
			uc.log.Warn().Err(err).Int64("user_id", user.ID).Msg("no se pudo enviar el correo de verificación")
		}
	}
	uc.log.Info().Int64("user_id", user.ID).Int64("organization_id", user.OrganizationID).Msg("cuenta creada")
	return &dto.SignupResponse{Message: "Account created. Please verify email.", User: *toUserResponse(user)}, nil
}

// VerifyEmail activa al usuario del token y devuelve la URL del front a la que redirigir.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, token string) (string, error) {
	user, err := uc.users.GetByVerifyToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return "", fmt.Errorf("auth: buscar token: %w", err)
	}
	if user == nil {
		return uc.verifyRedirect(VerifyStatusInvalid), nil
	}
	if err := uc.users.MarkVerified(ctx, user.ID); err != nil {
		return "", fmt.Errorf("auth: verificar: %w", err)
	}
	return uc.verifyRedirect(VerifyStatusSuccess), nil
}

func (uc *AuthUseCase) verifyRedirect(status string) string {
	return fmt.Sprintf("%s/verify?status=%s", strings.TrimRight(uc.cfg.FrontendURL, "/"), status)
}

// Login verifica email/password, emite el token de sesión y devuelve los módulos permitidos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.Invalid("", "Email and password required")
	}
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsVerified {
		return nil, domain.ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.codec.Issue(jwt.Claims{UserID: user.ID, OrganizationID: user.OrganizationID, Role: user.Role}, uc.cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: emitir token: %w", err)
	}
	if err := uc.users.SetActive(ctx, user.ID, true); err != nil {
		return nil, fmt.Errorf("auth: activar: %w", err)
	}
	user.IsActive = true
	modules, err := uc.modules.GetAllowedModules(ctx, user.OrganizationID, user.ID)
	if err != nil {
		return nil, err
	}
	allowed := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		allowed = append(allowed, dto.ModuleResponse{ID: m.ID, Code: m.Code, Name: m.Name})
	}
	return &dto.LoginResponse{
		Token:          token,
		ExpiresIn:      int64(uc.cfg.SessionTTL.Seconds()),
		User:           *toUserResponse(user),
		AllowedModules: allowed,
	}, nil
}

// Logout marca al usuario inactivo y, si hay registro de revocación, invalida el token presentado.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return domain.ErrAuthRequired
	}
	if err := uc.users.SetActive(ctx, claims.UserID, false); err != nil {
		return fmt.Errorf("auth: desactivar: %w", err)
	}
	if uc.revoker != nil && claims.TokenID() != "" {
		if ttl := claims.ExpiresIn(time.Now()); ttl > 0 {
			if err := uc.revoker.Revoke(ctx, claims.TokenID(), ttl); err != nil {
				return fmt.Errorf("auth: revocar token: %w", err)
			}
		}
	}
	return nil
}

// GetUser devuelve un usuario de la organización del llamador.
func (uc *AuthUseCase) GetUser(ctx context.Context, organizationID, id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if user == nil || user.OrganizationID != organizationID {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListUsers usuarios de la organización del llamador (pantalla de permisos del admin).
func (uc *AuthUseCase) ListUsers(ctx context.Context, organizationID int64) ([]dto.UserResponse, error) {
	users, err := uc.users.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("auth: listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		IsActive:       u.IsActive,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
	}
}
