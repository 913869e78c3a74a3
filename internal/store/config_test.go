package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearStoreEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_CONFIG_FILE",
		"STORE_PATH",
		"STORE_MAX_OPEN_CONNS",
		"STORE_MAX_IDLE_CONNS",
		"STORE_BUSY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearStoreEnv(t)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.MaxOpenConns != 8 || cfg.MaxIdleConns != 8 {
		t.Fatalf("pool = %d/%d", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.BusyTimeout != 5*time.Second {
		t.Fatalf("busy timeout = %v", cfg.BusyTimeout)
	}
}

func TestLoadConfigFileLayeredUnderEnv(t *testing.T) {
	clearStoreEnv(t)
	path := filepath.Join(t.TempDir(), "store.json")
	payload := `{
		"path": "/var/lib/copilot/file.db",
		"max_open_conns": 2,
		"busy_timeout": "2s"
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write store config file: %v", err)
	}
	t.Setenv("STORE_CONFIG_FILE", path)
	t.Setenv("STORE_MAX_OPEN_CONNS", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Path != "/var/lib/copilot/file.db" {
		t.Fatalf("path = %q", cfg.Path)
	}
	if cfg.MaxOpenConns != 4 {
		t.Fatalf("max open conns = %d, env must override file", cfg.MaxOpenConns)
	}
	if cfg.BusyTimeout != 2*time.Second {
		t.Fatalf("busy timeout = %v", cfg.BusyTimeout)
	}
}

func TestLoadConfigRejectsBadPoolValue(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("STORE_MAX_OPEN_CONNS", "many")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unparseable STORE_MAX_OPEN_CONNS")
	}
}
