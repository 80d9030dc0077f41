package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/config"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/handler"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopadmin-api/pkg/utils"
)

// AdminRole is the role every protected route requires
const AdminRole = "admin"

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Banner    *handler.BannerHandler
	Upload    *handler.UploadHandler
	Order     *handler.OrderHandler
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	RateLimiter *middleware.UserRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		}
		if deps.RateLimiter != nil {
			body["rate_limiter"] = deps.RateLimiter.Stats()
		}
		c.JSON(http.StatusOK, body)
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes, limited per client IP
		auth := v1.Group("/auth")
		if deps.RateLimiter != nil {
			auth.Use(deps.RateLimiter.Middleware())
		}
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)

		// Protected routes, limited per user
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}
		protected.Use(middleware.RequireRole(AdminRole))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.GetProfile)

	categories := protected.Group("/categories")
	categories.Use(middleware.RequirePermission("manage-catalog"))
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
	}

	products := protected.Group("/products")
	products.Use(middleware.RequirePermission("manage-catalog"))
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
	}

	banners := protected.Group("/banners")
	banners.Use(middleware.RequirePermission("manage-banners"))
	{
		banners.GET("", h.Banner.List)
		banners.POST("", h.Banner.Create)
	}

	protected.POST("/uploads", middleware.RequirePermission("upload-images"), h.Upload.Upload)

	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("view-orders"))
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
	}

	protected.GET("/analytics", middleware.RequirePermission("view-analytics"), h.Analytics.Get)
}
