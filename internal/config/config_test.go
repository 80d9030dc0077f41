package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.Local, LoadLocation(""))
	assert.Equal(t, time.Local, LoadLocation("Local"))
	assert.Equal(t, time.UTC, LoadLocation("UTC"))
	assert.Equal(t, time.Local, LoadLocation("Not/AZone"))
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "shop",
		User:     "u",
		Password: "p",
		SSLMode:  "disable",
		Timezone: "UTC",
	}

	assert.Equal(t, "host=db user=u password=p dbname=shop port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestLoadAnalyticsTimezoneFromEnv(t *testing.T) {
	t.Setenv("ANALYTICS_TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, "UTC", cfg.Analytics.Timezone)
	assert.Equal(t, time.UTC, cfg.Analytics.Location)
}

func TestLoadFileDefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\nJWT_EXPIRY_HOURS=2\nADMIN_EMAIL=owner@shop.test\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	cfg := LoadFile(path)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "owner@shop.test", cfg.Admin.Email)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, int64(10<<20), cfg.Storage.UploadMaxSize)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFileMissingFile(t *testing.T) {
	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "shopadmin-api", cfg.App.Name)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoadSplitsCORSListsOnCommas(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.shop.test, https://shop.test,,")
	t.Setenv("CORS_ALLOWED_METHODS", "GET,POST")

	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, []string{"https://admin.shop.test", "https://shop.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST"}, cfg.CORS.AllowedMethods)
	assert.Nil(t, cfg.CORS.AllowedHeaders)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a"}, splitList("a"))
	assert.Equal(t, []string{"a", "b c"}, splitList(" a ,b c"))
}
