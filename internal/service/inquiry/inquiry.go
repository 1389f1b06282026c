// internal/service/inquiry/inquiry.go
package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"time"

	"autosalon-service/internal/domain/inquiry"
	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/ratelimit"
	"autosalon-service/internal/service/email"
	ws "autosalon-service/internal/websocket"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	submitLimit  = 5
	submitWindow = time.Hour
)

// InquiryService handles contact-form submissions and the CMS inbox built on
// top of them.
type InquiryService struct {
	inquiryRepo inquiry.Repository
	vehicleRepo vehicle.Reader
	limiter     *ratelimit.Limiter
	emailSender *email.EmailSender
	notifyEmail string
	hub         *ws.Hub
	logger      *zap.Logger
}

func NewInquiryService(
	inquiryRepo inquiry.Repository,
	vehicleRepo vehicle.Reader,
	limiter *ratelimit.Limiter,
	emailSender *email.EmailSender,
	notifyEmail string,
	hub *ws.Hub,
	logger *zap.Logger,
) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		vehicleRepo: vehicleRepo,
		limiter:     limiter,
		emailSender: emailSender,
		notifyEmail: notifyEmail,
		hub:         hub,
		logger:      logger,
	}
}

// ========== Public Submission ==========

// Submit stores a contact-form submission and fans out notifications to the
// dashboard and, when configured, to the sales inbox. Notification failures
// never fail the submission.
func (s *InquiryService) Submit(ctx context.Context, req *inquiry.CreateInquiryRequest, ipAddress string) (*inquiry.Inquiry, error) {
	allowed, err := s.limiter.Allow(ctx, fmt.Sprintf("inquiry:%s", ipAddress), submitLimit, submitWindow)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	// Tie the inquiry to a vehicle only if the reference is real.
	if req.VehicleID != "" {
		if _, err := s.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
			return nil, xerrors.ErrInvalidInput
		}
	}

	inq := &inquiry.Inquiry{
		ID:        ulid.Make().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Message:   req.Message,
		VehicleID: sql.NullString{String: req.VehicleID, Valid: req.VehicleID != ""},
	}
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	s.logger.Info("inquiry received",
		zap.String("inquiry_id", inq.ID),
		zap.String("vehicle_id", req.VehicleID),
	)

	unread, err := s.inquiryRepo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("failed to count unread inquiries", zap.Error(err))
		unread = 0
	}
	s.hub.BroadcastNewInquiry(inq, unread)

	s.notifySales(ctx, inq)

	return inq, nil
}

// notifySales emails the configured sales inbox about the new inquiry.
func (s *InquiryService) notifySales(ctx context.Context, inq *inquiry.Inquiry) {
	if s.notifyEmail == "" || !s.emailSender.Configured() {
		return
	}

	subject := fmt.Sprintf("Novi upit: %s", inq.Name)
	body := fmt.Sprintf(`
		<p>Stigao je novi upit putem web stranice.</p>
		<table class="details">
			<tr><td>Ime</td><td>%s</td></tr>
			<tr><td>Email</td><td>%s</td></tr>
			<tr><td>Telefon</td><td>%s</td></tr>
			<tr><td>Poruka</td><td>%s</td></tr>
		</table>`,
		html.EscapeString(inq.Name),
		html.EscapeString(inq.Email),
		html.EscapeString(inq.Phone.String),
		html.EscapeString(inq.Message),
	)

	if inq.VehicleID.Valid {
		if v, err := s.vehicleRepo.FindByID(ctx, inq.VehicleID.String); err == nil {
			body += fmt.Sprintf("<p>Vozilo: %s %s (%d)</p>",
				html.EscapeString(v.Brand), html.EscapeString(v.Model), v.Year)
		}
	}

	if err := s.emailSender.Send(s.notifyEmail, subject, body); err != nil {
		s.logger.Error("failed to send inquiry notification email", zap.Error(err))
	}
}

// ========== CMS Inbox ==========

// List returns a page of the inbox together with totals.
func (s *InquiryService) List(ctx context.Context, filters *inquiry.ListFilters) (*inquiry.ListResponse, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	inquiries, total, err := s.inquiryRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	unread, err := s.inquiryRepo.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread inquiries: %w", err)
	}

	return &inquiry.ListResponse{
		Inquiries: inquiries,
		Total:     total,
		Unread:    unread,
	}, nil
}

// Get returns one inquiry by id.
func (s *InquiryService) Get(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	return s.inquiryRepo.FindByID(ctx, id)
}

// MarkRead flags an inquiry as handled.
func (s *InquiryService) MarkRead(ctx context.Context, id string) error {
	return s.inquiryRepo.MarkRead(ctx, id)
}

// Delete removes an inquiry from the inbox.
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.inquiryRepo.Delete(ctx, id)
}
