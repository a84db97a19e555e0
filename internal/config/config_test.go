package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("FRONTEND_ORIGIN", "http://a.test, http://b.test")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("TZ", "")
	t.Setenv("CACHE_TTL_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "admin@courtvista.com", cfg.AdminEmail)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.FrontendOrigins)
	assert.Equal(t, "courtvista", cfg.MongoDB)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_BACKEND", "memory")
	_, err := Load()
	assert.Error(t, err)
}

func TestMongoDBFromURI(t *testing.T) {
	assert.Equal(t, "cv", mongoDBFromURI("mongodb://localhost:27017/cv"))
	assert.Equal(t, "cv", mongoDBFromURI("mongodb://localhost:27017/cv/extra"))
	assert.Equal(t, "", mongoDBFromURI("mongodb://localhost:27017"))
}
