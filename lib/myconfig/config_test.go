package myconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "CATALOG_URL", "CART_STORAGE_KEY", "STORE_BACKEND", "REDIS_URL", "GOOGLE_CLOUD_PROJECT", "HTTP_CLIENT_TIMEOUT"} {
			t.Setenv(key, "")
		}

		assert.Equal(t, Config{
			Port:              "8080",
			CatalogURL:        "http://localhost:8080",
			CartStorageKey:    "@RocketShoes:cart",
			StoreBackend:      "",
			RedisURL:          "redis://localhost:6379/0",
			ProjectID:         "",
			HTTPClientTimeout: 0,
		}, Load())
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("CATALOG_URL", "http://localhost:3333")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("HTTP_CLIENT_TIMEOUT", "2s")

		cfg := Load()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "http://localhost:3333", cfg.CatalogURL)
		assert.Equal(t, "redis", cfg.StoreBackend)
		assert.Equal(t, 2*time.Second, cfg.HTTPClientTimeout)
	})

	t.Run("Unparseable duration falls back", func(t *testing.T) {
		t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")
		assert.Equal(t, time.Duration(0), Load().HTTPClientTimeout)
	})
}
