// internal/repository/postgres/auth_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"autosalon-service/internal/domain/admin"
	xerrors "autosalon-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminColumns = `id, full_name, email, password_hash, role, is_active,
       last_login, created_by, created_at, updated_at`

type AuthRepository struct {
	db *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create inserts a new staff account
func (r *AuthRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (full_name, email, password_hash, role, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		a.FullName, a.Email, a.PasswordHash, a.Role, a.IsActive, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByID retrieves a staff account by ID
func (r *AuthRepository) FindByID(ctx context.Context, id int64) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByEmail retrieves a staff account by email
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *AuthRepository) findOne(ctx context.Context, query string, arg any) (*admin.Admin, error) {
	var a admin.Admin
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
		&a.LastLogin, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &a, nil
}

// List returns all staff accounts
func (r *AuthRepository) List(ctx context.Context) ([]admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []admin.Admin
	for rows.Next() {
		var a admin.Admin
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
			&a.LastLogin, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// UpdatePassword replaces the stored password hash
func (r *AuthRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $1, updated_at = now() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetActive enables or disables a staff account
func (r *AuthRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE admins SET is_active = $1, updated_at = now() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update admin status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login
func (r *AuthRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE admins SET last_login = now() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to record login time: %w", err)
	}
	return nil
}
