// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"time"

	"autosalon-service/internal/config"
	"autosalon-service/internal/db"
	"autosalon-service/internal/domain/vehicle"
	authHandler "autosalon-service/internal/handlers/auth"
	catalogHandler "autosalon-service/internal/handlers/catalog"
	favoritesHandler "autosalon-service/internal/handlers/favorites"
	inquiryHandler "autosalon-service/internal/handlers/inquiry"
	vehicleHandler "autosalon-service/internal/handlers/vehicle"
	wsHandler "autosalon-service/internal/handlers/ws"
	"autosalon-service/internal/middleware"
	"autosalon-service/internal/pkg/jwt"
	"autosalon-service/internal/pkg/ratelimit"
	"autosalon-service/internal/repository/fallback"
	"autosalon-service/internal/repository/postgres"
	authsvc "autosalon-service/internal/service/auth"
	"autosalon-service/internal/service/email"
	favoritessvc "autosalon-service/internal/service/favorites"
	"autosalon-service/internal/service/financing"
	inquirysvc "autosalon-service/internal/service/inquiry"
	"autosalon-service/internal/service/storefront"
	vehiclesvc "autosalon-service/internal/service/vehicle"
	"autosalon-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	cancelHub context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	// An unreachable database degrades the service to the static catalog
	// snapshot instead of failing startup.
	pool, dbErr := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if dbErr != nil {
		logger.Error("database unavailable, starting in read-only fallback mode", zap.Error(dbErr))
		return s.startReadOnly(logger)
	}

	if err := db.Migrate(s.cfg.MigrateURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- JWT Manager -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Rate Limiter -----
	limiter := ratelimit.NewLimiter(redisClient)

	// ----- Email -----
	emailSender := email.NewEmailSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPFromName,
		s.cfg.SMTPSecure,
	)

	// ----- Repositories -----
	vehicleRepo := postgres.NewVehicleRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)
	adminRepo := postgres.NewAuthRepository(pool)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	hubCtx, cancelHub := context.WithCancel(context.Background())
	s.cancelHub = cancelHub
	go hub.Run(hubCtx)

	// ----- Services -----
	authService := authsvc.NewAuthService(adminRepo, jwtManager, limiter, redisClient, logger)
	catalogService := storefront.NewCatalogService(vehicleRepo, logger)
	financingService := financing.NewFinancingService(vehicleRepo)
	favoritesService := favoritessvc.NewFavoritesService(redisClient, vehicleRepo, logger)
	inquiryService := inquirysvc.NewInquiryService(
		inquiryRepo,
		vehicleRepo,
		limiter,
		emailSender,
		s.cfg.InquiryNotifyEmail,
		hub,
		logger,
	)
	vehicleService := vehiclesvc.NewVehicleService(vehicleRepo, logger)

	// ----- Initialize Super Admin -----
	if err := s.initializeSuperAdmin(authService); err != nil {
		// don't fail startup, the CMS just has no accounts yet
		logger.Error("failed to initialize super admin", zap.Error(err))
	}

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
	)

	// ----- Router -----
	handlers := &Handlers{
		CatalogHandler:   catalogHandler.NewCatalogHandler(catalogService, financingService),
		InquiryHandler:   inquiryHandler.NewInquiryHandler(inquiryService),
		FavoritesHandler: favoritesHandler.NewFavoritesHandler(favoritesService),
		AuthHandler:      authHandler.NewAuthHandler(authService),
		VehicleHandler:   vehicleHandler.NewVehicleHandler(vehicleService),
		WSHandler:        wsHandler.NewWSHandler(hub, logger),
		AuthMiddleware:   authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// startReadOnly serves the public catalog from the static snapshot file.
func (s *Server) startReadOnly(logger *zap.Logger) error {
	repo, err := fallback.NewVehicleFileRepository(s.cfg.VehicleFallbackFile)
	if err != nil {
		return fmt.Errorf("failed to load fallback catalog: %w", err)
	}

	var reader vehicle.Reader = repo
	catalogService := storefront.NewCatalogService(reader, logger)
	financingService := financing.NewFinancingService(reader)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
	)

	handlers := &Handlers{
		CatalogHandler: catalogHandler.NewCatalogHandler(catalogService, financingService),
		ReadOnly:       true,
	}
	SetupRouter(s.engine, logger, handlers)

	logger.Info("server starting in read-only mode", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// initializeSuperAdmin creates the super admin account if it doesn't exist.
func (s *Server) initializeSuperAdmin(authService *authsvc.AuthService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return authService.EnsureSuperAdminExists(
		ctx,
		s.cfg.SuperAdminEmail,
		s.cfg.SuperAdminPassword,
		s.cfg.SuperAdminName,
	)
}

// Shutdown stops background work; the HTTP listener is torn down with the
// process.
func (s *Server) Shutdown() {
	if s.cancelHub != nil {
		s.cancelHub()
	}
}
