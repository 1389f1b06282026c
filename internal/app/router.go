// internal/app/router.go
package app

import (
	authHandler "autosalon-service/internal/handlers/auth"
	catalogHandler "autosalon-service/internal/handlers/catalog"
	favoritesHandler "autosalon-service/internal/handlers/favorites"
	inquiryHandler "autosalon-service/internal/handlers/inquiry"
	vehicleHandler "autosalon-service/internal/handlers/vehicle"
	wsHandler "autosalon-service/internal/handlers/ws"
	"autosalon-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	CatalogHandler   *catalogHandler.CatalogHandler
	InquiryHandler   *inquiryHandler.InquiryHandler
	FavoritesHandler *favoritesHandler.FavoritesHandler
	AuthHandler      *authHandler.AuthHandler
	VehicleHandler   *vehicleHandler.VehicleHandler
	WSHandler        *wsHandler.WSHandler
	AuthMiddleware   *middleware.AuthMiddleware

	// ReadOnly marks catalog-from-snapshot mode: the database is down, so
	// everything except the public catalog is unavailable.
	ReadOnly bool
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "read_only": h.ReadOnly})
	})

	// ==================== Public Catalog ====================
	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", h.CatalogHandler.List)
		vehicles.GET("/featured", h.CatalogHandler.Featured)
		vehicles.GET("/exclusive", h.CatalogHandler.Exclusive)
		vehicles.GET("/compare", h.CatalogHandler.Compare) // ?ids=a,b,c
		vehicles.GET("/filters", h.CatalogHandler.FilterOptions)
		vehicles.GET("/:id", h.CatalogHandler.Get)
		vehicles.GET("/:id/financing", h.CatalogHandler.Financing) // ?down=&term=&rate=
	}

	if h.ReadOnly {
		logger.Warn("router running in read-only mode, CMS routes disabled")
		return
	}

	// ==================== Public Contact Form ====================
	api.POST("/inquiries", h.InquiryHandler.Submit)

	// ==================== Visitor Favorites ====================
	favorites := api.Group("/favorites")
	{
		favorites.GET("", h.FavoritesHandler.List)
		favorites.POST("/:id", h.FavoritesHandler.Add)
		favorites.DELETE("/:id", h.FavoritesHandler.Remove)
	}

	// ==================== Staff Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.POST("/logout", h.AuthHandler.Logout)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.PUT("/change-password", h.AuthHandler.ChangePassword)
	}

	// ==================== CMS Dashboard Feed ====================
	r.GET("/ws", h.AuthMiddleware.Auth(), h.WSHandler.Connect)

	// ==================== CMS ====================
	admin := api.Group("/admin")
	{
		// Super Admin Only Routes
		superAdmin := admin.Group("")
		superAdmin.Use(h.AuthMiddleware.SuperAdminOnly()...)
		{
			superAdmin.POST("/admins", h.AuthHandler.CreateAdmin)
			superAdmin.GET("/admins", h.AuthHandler.ListAdmins)
			superAdmin.PUT("/admins/:id/active", h.AuthHandler.SetActive)
		}

		// Any Admin Routes
		adminAuth := admin.Group("")
		adminAuth.Use(h.AuthMiddleware.AdminOnly()...)
		{
			// Catalog management
			adminVehicles := adminAuth.Group("/vehicles")
			{
				adminVehicles.POST("", h.VehicleHandler.Create)
				adminVehicles.GET("/exclusive", h.VehicleHandler.ListExclusive)
				adminVehicles.PUT("/exclusive-order", h.VehicleHandler.ReorderExclusive)
				adminVehicles.PUT("/:id", h.VehicleHandler.Update)
				adminVehicles.DELETE("/:id", h.VehicleHandler.Delete)
				adminVehicles.PUT("/:id/featured", h.VehicleHandler.SetFeatured)
			}

			// Inquiry inbox
			adminInquiries := adminAuth.Group("/inquiries")
			{
				adminInquiries.GET("", h.InquiryHandler.List)
				adminInquiries.GET("/:id", h.InquiryHandler.Get)
				adminInquiries.PUT("/:id/read", h.InquiryHandler.MarkRead)
				adminInquiries.DELETE("/:id", h.InquiryHandler.Delete)
			}
		}
	}
}
