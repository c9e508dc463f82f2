package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Train.Coverage != nil || cfg.Doc.Row != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[train]
coverage = 0.6
flash-ms = 250
delimiter = ","

[doc]
row = 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Train.Coverage == nil || *cfg.Train.Coverage != 0.6 {
		t.Fatalf("unexpected coverage: %v", cfg.Train.Coverage)
	}
	if cfg.Train.FlashMs == nil || *cfg.Train.FlashMs != 250 {
		t.Fatalf("unexpected flash-ms: %v", cfg.Train.FlashMs)
	}
	if cfg.Train.Delimiter == nil || *cfg.Train.Delimiter != "," {
		t.Fatalf("unexpected delimiter: %v", cfg.Train.Delimiter)
	}
	if cfg.Train.Row != nil || cfg.Train.ASCII != nil {
		t.Fatalf("expected unset values to stay nil")
	}
	if cfg.Doc.Row == nil || *cfg.Doc.Row != 2 {
		t.Fatalf("unexpected doc row: %v", cfg.Doc.Row)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[train]\ncoverag = 0.5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "train.coverag") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "speed", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
