package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid_size: 12\neditor:\n  show_help: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GridSize != 12 {
		t.Errorf("GridSize = %d, expected 12", cfg.GridSize)
	}
	if cfg.Editor.ShowHelp {
		t.Error("ShowHelp should be overridden to false")
	}
	if cfg.Editor.ToastSeconds != Default().Editor.ToastSeconds {
		t.Errorf("ToastSeconds = %d, expected default %d", cfg.Editor.ToastSeconds, Default().Editor.ToastSeconds)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	//nolint:errcheck // test fixture
	os.WriteFile(bad, []byte("grid_size: [oops"), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed file should fail")
	}

	big := filepath.Join(dir, "big.yaml")
	//nolint:errcheck // test fixture
	os.WriteFile(big, []byte("grid_size: 500\n"), 0o600)
	if _, err := Load(big); err == nil {
		t.Error("Load() should reject out-of-range grid_size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"smallest grid", func(c *Config) { c.GridSize = MinGridSize }, false},
		{"grid too small", func(c *Config) { c.GridSize = 1 }, true},
		{"grid too large", func(c *Config) { c.GridSize = MaxGridSize + 1 }, true},
		{"negative toast", func(c *Config) { c.Editor.ToastSeconds = -1 }, true},
		{"negative idle", func(c *Config) { c.SSH.IdleTimeoutMinutes = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandHome(~/x.db) = %q", got)
	}
	if got := ExpandHome("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("ExpandHome(/abs/x.db) = %q", got)
	}
}
