// internal/repository/postgres/inquiry_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"autosalon-service/internal/domain/inquiry"
	xerrors "autosalon-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create stores a new contact-form submission
func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, message, vehicle_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Message, inq.VehicleID,
	).Scan(&inq.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// FindByID retrieves one inquiry
func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, message, vehicle_id, read, created_at
		FROM inquiries
		WHERE id = $1
	`

	var inq inquiry.Inquiry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
		&inq.VehicleID, &inq.Read, &inq.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}
	return &inq, nil
}

// List returns inquiries newest first, with total count for paging
func (r *InquiryRepository) List(ctx context.Context, filters *inquiry.ListFilters) ([]inquiry.Inquiry, int, error) {
	where := ""
	if filters.UnreadOnly {
		where = "WHERE NOT read"
	}

	var total int
	countQuery := "SELECT count(*) FROM inquiries " + where
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, phone, message, vehicle_id, read, created_at
		FROM inquiries %s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, where)

	rows, err := r.db.Query(ctx, query, filters.Limit, filters.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []inquiry.Inquiry
	for rows.Next() {
		var inq inquiry.Inquiry
		if err := rows.Scan(
			&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
			&inq.VehicleID, &inq.Read, &inq.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, total, rows.Err()
}

// CountUnread returns the number of unread inquiries
func (r *InquiryRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM inquiries WHERE NOT read").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread inquiries: %w", err)
	}
	return count, nil
}

// MarkRead flags an inquiry as handled
func (r *InquiryRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE inquiries SET read = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to mark inquiry read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes an inquiry permanently
func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM inquiries WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
