// internal/domain/admin/repository.go
package admin

import "context"

// Repository is the persistence contract for staff accounts.
type Repository interface {
	Create(ctx context.Context, a *Admin) error
	FindByID(ctx context.Context, id int64) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetActive(ctx context.Context, id int64, active bool) error
	TouchLastLogin(ctx context.Context, id int64) error
}
