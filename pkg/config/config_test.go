package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Suggest.MaxCount != DefaultConfig().Suggest.MaxCount {
		t.Fatalf("expected default MaxCount, got %d", cfg.Suggest.MaxCount)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Suggest.Mode != cfg.Suggest.Mode {
		t.Fatalf("reloaded mode %q != original %q", reloaded.Suggest.Mode, cfg.Suggest.Mode)
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}

	newMax := 99
	newMode := "fast"
	if err := cfg.Update(path, &newMax, nil, &newMode); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Suggest.MaxCount != newMax {
		t.Fatalf("MaxCount = %d, want %d", reloaded.Suggest.MaxCount, newMax)
	}
	if reloaded.Suggest.Mode != newMode {
		t.Fatalf("Mode = %q, want %q", reloaded.Suggest.Mode, newMode)
	}
}

func TestInitConfigRecoversPartialOnDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_count has the wrong TOML type for Config.Suggest.MaxCount (int),
	// which fails the strict struct decode LoadConfig relies on; ban_bad
	// is well-typed and should still come back through the map-based
	// recovery path in recoverPartialConfig.
	broken := "[suggest]\nmax_count = \"lots\"\nban_bad = true\n"
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Suggest.MaxCount != DefaultConfig().Suggest.MaxCount {
		t.Fatalf("expected unrecoverable MaxCount to fall back to default, got %d", cfg.Suggest.MaxCount)
	}
	if !cfg.Suggest.BanBad {
		t.Fatal("expected recovered BanBad = true")
	}
}

func TestLoadConfigWithPriorityExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg, resolved, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
}
