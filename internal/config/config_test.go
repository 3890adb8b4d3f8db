package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(DatabaseEnv, "")
	ResetCache()
	t.Cleanup(ResetCache)
	return dir
}

func TestPath(t *testing.T) {
	dir := setup(t)

	want := filepath.Join(dir, "pubman", "config.yml")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoad_Missing(t *testing.T) {
	setup(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("missing config should be empty, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setup(t)

	cfg := &Config{DatabasePath: "/tmp/pubs.db"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	ResetCache()
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.DatabasePath != "/tmp/pubs.db" {
		t.Errorf("DatabasePath = %q, want /tmp/pubs.db", got.DatabasePath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := setup(t)

	path := filepath.Join(dir, "pubman", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("database_path: [\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestDatabasePath_Precedence(t *testing.T) {
	dir := setup(t)

	// Nothing configured: XDG_DATA_HOME default.
	got, err := DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	want := filepath.Join(dir, "data", "pubman", "pubman.db")
	if got != want {
		t.Errorf("default DatabasePath() = %q, want %q", got, want)
	}

	// Config file value wins over the default.
	cfg := &Config{DatabasePath: "/tmp/configured.db"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	ResetCache()

	got, err = DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	if got != "/tmp/configured.db" {
		t.Errorf("DatabasePath() = %q, want configured value", got)
	}

	// Environment variable wins over everything.
	t.Setenv(DatabaseEnv, "/tmp/env.db")
	got, err = DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	if got != "/tmp/env.db" {
		t.Errorf("DatabasePath() = %q, want env override", got)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/pubs.db", filepath.Join(home, "pubs.db")},
		{"/abs/pubs.db", "/abs/pubs.db"},
		{"rel/pubs.db", "rel/pubs.db"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
