package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/application/service"
	"github.com/sangkips/shopadmin-api/internal/config"
	"github.com/sangkips/shopadmin-api/internal/infrastructure/cache"
	"github.com/sangkips/shopadmin-api/internal/infrastructure/database"
	"github.com/sangkips/shopadmin-api/internal/infrastructure/repository"
	"github.com/sangkips/shopadmin-api/internal/infrastructure/storage"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/handler"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/routes"
	"github.com/sangkips/shopadmin-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Redis is optional; without it category lists are read straight from the database
	var categoryCache service.CategoryListCache
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := cache.NewRedisClient(pingCtx, cfg.Redis.URL)
	cancelPing()
	if err != nil {
		log.Printf("Warning: category cache disabled: %v", err)
	} else {
		defer redisClient.Close()
		categoryCache = cache.NewCategoryCache(redisClient, cfg.Redis.CacheTTL)
	}

	// Image uploads need Cloudinary credentials
	var imageStorage service.ImageStorage
	if cfg.Storage.CloudName == "" || cfg.Storage.APIKey == "" || cfg.Storage.APISecret == "" {
		log.Println("Warning: Cloudinary credentials not set, image uploads disabled")
	} else {
		cld, err := storage.NewCloudinaryStorage(&cfg.Storage)
		if err != nil {
			log.Printf("Warning: image uploads disabled: %v", err)
		} else {
			imageStorage = cld
		}
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	categoryService := service.NewCategoryService(categoryRepo, categoryCache)
	productService := service.NewProductService(productRepo, categoryRepo)
	bannerService := service.NewBannerService(bannerRepo)
	imageService := service.NewImageService(imageStorage)
	orderService := service.NewOrderService(orderRepo)
	analyticsService := service.NewAnalyticsService(orderRepo, cfg.Analytics.Location)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Banner:    handler.NewBannerHandler(bannerService),
		Upload:    handler.NewUploadHandler(imageService, cfg.Storage.UploadMaxSize),
		Order:     handler.NewOrderHandler(orderService, cfg.Analytics.Location),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	rateLimiter := middleware.NewUserRateLimiter(
		middleware.RateLimiterConfigFrom(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s, analytics timezone: %s", cfg.App.Env, cfg.Analytics.Location)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return
	}

	log.Println("Server exited properly")
}
