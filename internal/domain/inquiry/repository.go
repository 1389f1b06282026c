// internal/domain/inquiry/repository.go
package inquiry

import "context"

// Repository is the persistence contract for contact-form submissions.
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	FindByID(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context, filters *ListFilters) ([]Inquiry, int, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
