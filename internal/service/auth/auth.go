// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autosalon-service/internal/domain/admin"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/jwt"
	"autosalon-service/internal/pkg/ratelimit"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// AuthService handles staff authentication for the CMS. There is no public
// registration; accounts are created by the super admin.
type AuthService struct {
	adminRepo  admin.Repository
	jwtManager *jwt.Manager
	limiter    *ratelimit.Limiter
	cache      *redis.Client
	logger     *zap.Logger
}

func NewAuthService(
	adminRepo admin.Repository,
	jwtManager *jwt.Manager,
	limiter *ratelimit.Limiter,
	cache *redis.Client,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		limiter:    limiter,
		cache:      cache,
		logger:     logger,
	}
}

// ========== Login ==========

// Login authenticates a staff member with email/password.
func (s *AuthService) Login(ctx context.Context, req *admin.LoginRequest, ipAddress string) (*admin.LoginResponse, error) {
	allowed, err := s.limiter.Allow(ctx, fmt.Sprintf("login:%s:%s", ipAddress, req.Email), loginAttemptLimit, loginAttemptWindow)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	account, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !account.IsActive {
		return nil, xerrors.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	if err := s.adminRepo.TouchLastLogin(ctx, account.ID); err != nil {
		s.logger.Error("failed to update last login", zap.Error(err))
	}
	if err := s.limiter.Reset(ctx, fmt.Sprintf("login:%s:%s", ipAddress, req.Email)); err != nil {
		s.logger.Error("failed to reset login attempts", zap.Error(err))
	}

	token, _, expiresAt, err := s.jwtManager.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("staff login",
		zap.Int64("admin_id", account.ID),
		zap.String("email", account.Email),
	)

	return &admin.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     account.PublicInfo(),
	}, nil
}

// ========== Token Validation ==========

// ValidateToken validates a JWT and checks the revocation list.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	revoked, err := s.cache.Exists(ctx, blacklistKey(claims.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation list: %w", err)
	}
	if revoked > 0 {
		return nil, xerrors.ErrTokenRevoked
	}

	return claims, nil
}

// Logout revokes the current token by blacklisting its JTI until expiry.
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, blacklistKey(claims.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("token:blacklist:%s", jti)
}

// ========== Password Management ==========

// ChangePassword changes the caller's password after verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, req *admin.ChangePasswordRequest) error {
	account, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return xerrors.ErrUnauthorized
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ========== Staff Management (Super Admin Only) ==========

// CreateAdmin creates a new staff account.
func (s *AuthService) CreateAdmin(ctx context.Context, req *admin.CreateAdminRequest, createdBy int64) (*admin.Info, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, xerrors.ErrConflict
	} else if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &admin.Admin{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         admin.RoleAdmin,
		IsActive:     true,
		CreatedBy:    &createdBy,
	}
	if err := s.adminRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("staff account created",
		zap.Int64("admin_id", account.ID),
		zap.Int64("created_by", createdBy),
	)

	info := account.PublicInfo()
	return &info, nil
}

// ListAdmins lists all staff accounts.
func (s *AuthService) ListAdmins(ctx context.Context) ([]admin.Info, error) {
	accounts, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	infos := make([]admin.Info, 0, len(accounts))
	for i := range accounts {
		infos = append(infos, accounts[i].PublicInfo())
	}
	return infos, nil
}

// SetActive enables or disables a staff account. A super admin cannot
// deactivate themselves.
func (s *AuthService) SetActive(ctx context.Context, targetID, callerID int64, active bool) error {
	if targetID == callerID && !active {
		return xerrors.ErrInvalidInput
	}
	if err := s.adminRepo.SetActive(ctx, targetID, active); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// ========== Bootstrap ==========

// EnsureSuperAdminExists creates the super admin account on first startup
// from environment configuration. Subsequent startups are a no-op.
func (s *AuthService) EnsureSuperAdminExists(ctx context.Context, email, password, fullName string) error {
	if email == "" || password == "" {
		s.logger.Warn("super admin bootstrap skipped, credentials not configured")
		return nil
	}

	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, xerrors.ErrNotFound) {
		return fmt.Errorf("failed to check super admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := &admin.Admin{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         admin.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	s.logger.Info("super admin bootstrapped", zap.String("email", email))
	return nil
}
