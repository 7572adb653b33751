package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/domain"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios (pool o tx).
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, organization_id, email, password_hash, full_name, role, is_active, is_verified, COALESCE(verify_token, ''), created_at`

// Create persiste un nuevo usuario y completa su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (organization_id, email, password_hash, full_name, role, is_active, is_verified, verify_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.OrganizationID, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.IsActive, user.IsVerified, user.VerifyToken, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (único en todo el sistema).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// GetByVerifyToken obtiene el usuario pendiente de verificar con ese token.
func (r *UserRepo) GetByVerifyToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE verify_token = $1`, token)
}

// ListByOrganization usuarios de la organización ordenados por id.
func (r *UserRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE organization_id = $1 ORDER BY id`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
			&u.IsActive, &u.IsVerified, &u.VerifyToken, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// MarkVerified activa y verifica al usuario, y consume el token.
func (r *UserRepo) MarkVerified(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = TRUE, is_verified = TRUE, verify_token = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetActive actualiza el flag de actividad (login / logout).
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.IsActive, &u.IsVerified, &u.VerifyToken, &u.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
