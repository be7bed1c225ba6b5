package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	yaml := `
params:
  source: sqlite
  path: cache.db
color: never
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Params.Source != SourceSQLite {
		t.Errorf("source = %q", cfg.Params.Source)
	}
	if cfg.Params.Table != DefaultParamTable {
		t.Errorf("table = %q, want default", cfg.Params.Table)
	}
	if cfg.Color != ColorNever {
		t.Errorf("color = %q", cfg.Color)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("params:\n  source: yaml\n  path: p.yaml\n"), "test.yaml")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("color = %q, want auto", cfg.Color)
	}
	if cfg.Params.Table != "" {
		t.Errorf("yaml source should not get a table, got %q", cfg.Params.Table)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing source", "params:\n  path: x\n", "params.source is required"},
		{"bad source", "params:\n  source: csv\n  path: x\n", "unknown source"},
		{"missing path", "params:\n  source: yaml\n", "params.path is required"},
		{"bad color", "params:\n  source: yaml\n  path: x\ncolor: rainbow\n", "unknown mode"},
		{"table with yaml", "params:\n  source: yaml\n  path: x\n  table: t\n", "only valid with source sqlite"},
		{"invalid yaml", "params: [", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("params:\n  source: yaml\n  path: data/params.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if want := filepath.Join(dir, "data", "params.yaml"); cfg.Params.Path != want {
		t.Errorf("path = %q, want %q", cfg.Params.Path, want)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
