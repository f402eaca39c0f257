package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Fatalf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.AdminPermission != "administrador" || cfg.ClientPermission != "cliente" {
		t.Fatalf("permissões padrão erradas: %q / %q", cfg.AdminPermission, cfg.ClientPermission)
	}
	if cfg.PermCacheSize != 100 {
		t.Fatalf("PermCacheSize = %d", cfg.PermCacheSize)
	}
	if cfg.PermCacheTTL != 300*time.Second {
		t.Fatalf("PermCacheTTL = %v", cfg.PermCacheTTL)
	}
	if cfg.Timezone != "America/Sao_Paulo" {
		t.Fatalf("Timezone = %q", cfg.Timezone)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("PERM_CACHE_SIZE", "50")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Fatalf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.PermCacheSize != 50 {
		t.Fatalf("PermCacheSize = %d", cfg.PermCacheSize)
	}
}

func TestInvalidNumericEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("PERM_CACHE_SIZE", "não-é-número")
	t.Setenv("TOKEN_TTL", "sem-unidade")

	cfg := Load()

	if cfg.PermCacheSize != 100 {
		t.Fatalf("PermCacheSize = %d", cfg.PermCacheSize)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{ServerPort: "8080"}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
}
