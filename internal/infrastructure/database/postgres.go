package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/sangkips/shopadmin-api/internal/config"
	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Permissions granted to the admin role
var adminPermissions = []string{
	"manage-catalog",
	"manage-banners",
	"upload-images",
	"view-orders",
	"view-analytics",
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Access control
		&entity.Permission{},
		&entity.Role{},
		&entity.User{},

		// Catalog
		&entity.Category{},
		&entity.Product{},
		&entity.Banner{},

		// Orders placed through the storefront
		&entity.Order{},
		&entity.LineItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the admin role with its permissions and, when
// credentials are configured, the admin account.
func SeedDefaultData(db *gorm.DB, admin *config.AdminConfig) error {
	log.Println("Seeding default data...")

	permissions := make([]entity.Permission, 0, len(adminPermissions))
	for _, name := range adminPermissions {
		permission := entity.Permission{Name: name}
		if err := db.Where(entity.Permission{Name: name}).FirstOrCreate(&permission).Error; err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", name, err)
		}
		permissions = append(permissions, permission)
	}

	adminRole := entity.Role{Name: "admin"}
	if err := db.Where(entity.Role{Name: "admin"}).FirstOrCreate(&adminRole).Error; err != nil {
		return fmt.Errorf("failed to seed admin role: %w", err)
	}
	if err := db.Model(&adminRole).Association("Permissions").Replace(permissions); err != nil {
		return fmt.Errorf("failed to attach admin permissions: %w", err)
	}

	if admin.Email == "" || admin.Password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	exists, err := adminExists(db, admin.Email)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("Admin user already exists: %s", admin.Email)
		return nil
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser := entity.User{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: hashedPassword,
		Roles:    []entity.Role{adminRole},
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", admin.Email)
	log.Println("Default data seeding completed")
	return nil
}

// adminExists reports whether a user with email is stored. Lookup failures
// other than a missing row are returned.
func adminExists(db *gorm.DB, email string) (bool, error) {
	var existing entity.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to look up admin user: %w", err)
}
