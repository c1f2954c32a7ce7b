package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "STORE_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_DB", "HTTP_TIMEOUT", "GEOCODING_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.StoreDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", cfg.StoreDriver)
	}
	if cfg.DBPath != "wthr.db" {
		t.Errorf("expected wthr.db, got %q", cfg.DBPath)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 0 {
		t.Errorf("unexpected redis defaults: %q db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.GeocodingURL != "" {
		t.Errorf("expected empty geocoding URL, got %q", cfg.GeocodingURL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_TIMEOUT", "2s")

	cfg := Load()

	if cfg.Port != "9090" || cfg.StoreDriver != "memory" || cfg.RedisDB != 3 || cfg.HTTPTimeout != 2*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REDIS_DB", "three")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	if cfg.RedisDB != 0 {
		t.Errorf("expected fallback redis db 0, got %d", cfg.RedisDB)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.HTTPTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg := Load()
	if cfg.Port != "7070" {
		t.Errorf("expected port from .env, got %q", cfg.Port)
	}
}
