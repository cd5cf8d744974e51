package myconfig

import (
	"fmt"
	"os"
	"time"
)

const DefaultCartStorageKey = "@RocketShoes:cart"

type Config struct {
	Port              string
	CatalogURL        string
	CartStorageKey    string
	StoreBackend      string
	RedisURL          string
	ProjectID         string
	HTTPClientTimeout time.Duration
}

func Load() Config {
	port := getEnv("PORT", "8080")

	return Config{
		Port:              port,
		CatalogURL:        getEnv("CATALOG_URL", fmt.Sprintf("http://localhost:%s", port)),
		CartStorageKey:    getEnv("CART_STORAGE_KEY", DefaultCartStorageKey),
		StoreBackend:      getEnv("STORE_BACKEND", ""),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
		ProjectID:         getEnv("GOOGLE_CLOUD_PROJECT", ""),
		HTTPClientTimeout: getEnvDuration("HTTP_CLIENT_TIMEOUT", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
