package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Analytics AnalyticsConfig
	Admin     AdminConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// StorageConfig holds the Cloudinary credentials used for image uploads
type StorageConfig struct {
	CloudName     string
	APIKey        string
	APISecret     string
	RootFolder    string
	UploadMaxSize int64
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// RateLimitConfig allows Requests per Duration seconds for each client
type RateLimitConfig struct {
	Requests int
	Duration int
}

// AnalyticsConfig controls how order timestamps are bucketed into days
type AnalyticsConfig struct {
	Timezone string
	Location *time.Location
}

// AdminConfig holds the credentials of the admin account seeded at startup
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

var defaults = map[string]interface{}{
	"APP_NAME":                 "shopadmin-api",
	"APP_ENV":                  "development",
	"APP_PORT":                 "8080",
	"APP_DEBUG":                true,
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_NAME":                  "shopadmin",
	"DB_USER":                  "postgres",
	"DB_PASSWORD":              "postgres",
	"DB_SSL_MODE":              "disable",
	"DB_TIMEZONE":              "UTC",
	"JWT_SECRET":               "change-this-secret-in-production",
	"JWT_EXPIRY_HOURS":         24,
	"JWT_REFRESH_EXPIRY_HOURS": 168,
	"CLOUDINARY_CLOUD_NAME":    "",
	"CLOUDINARY_API_KEY":       "",
	"CLOUDINARY_API_SECRET":    "",
	"CLOUDINARY_ROOT_FOLDER":   "shopadmin",
	"UPLOAD_MAX_SIZE":          10 << 20,
	"REDIS_URL":                "redis://localhost:6379/0",
	"REDIS_CACHE_TTL_SECONDS":  300,
	"CORS_ALLOWED_ORIGINS":     "http://localhost:3000",
	"CORS_ALLOWED_METHODS":     "",
	"CORS_ALLOWED_HEADERS":     "",
	"RATE_LIMIT_REQUESTS":      100,
	"RATE_LIMIT_DURATION":      60,
	"ANALYTICS_TIMEZONE":       "Local",
	"ADMIN_NAME":               "Shop Admin",
	"ADMIN_EMAIL":              "",
	"ADMIN_PASSWORD":           "",
}

// Load reads .env from the working directory, then the environment.
// Environment variables win over the file.
func Load() *Config {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: %s not loaded, using environment variables: %v", path, err)
	}

	hours := func(key string) time.Duration { return time.Duration(v.GetInt(key)) * time.Hour }

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			AccessTTL:  hours("JWT_EXPIRY_HOURS"),
			RefreshTTL: hours("JWT_REFRESH_EXPIRY_HOURS"),
		},
		Storage: StorageConfig{
			CloudName:     v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:        v.GetString("CLOUDINARY_API_KEY"),
			APISecret:     v.GetString("CLOUDINARY_API_SECRET"),
			RootFolder:    v.GetString("CLOUDINARY_ROOT_FOLDER"),
			UploadMaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			CacheTTL: time.Duration(v.GetInt("REDIS_CACHE_TTL_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(v.GetString("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Analytics: AnalyticsConfig{
			Timezone: v.GetString("ANALYTICS_TIMEZONE"),
			Location: LoadLocation(v.GetString("ANALYTICS_TIMEZONE")),
		},
		Admin: AdminConfig{
			Name:     v.GetString("ADMIN_NAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}
}

// splitList reads a comma-separated value, dropping blank entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadLocation resolves an IANA zone name. Empty or unknown names fall back to time.Local.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
