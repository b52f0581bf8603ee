package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_RootPrecedence(t *testing.T) {
	envRoot := t.TempDir()
	t.Setenv("WSCTL_ROOT", envRoot)
	t.Setenv("BIJMANTRA_API_URL", "")
	t.Setenv("BIJMANTRA_API_TOKEN", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RootDir != filepath.Clean(envRoot) {
		t.Fatalf("expected env root %q, got %q", envRoot, cfg.RootDir)
	}

	override := t.TempDir()
	cfg, err = Load(override)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RootDir != filepath.Clean(override) {
		t.Fatalf("expected override root %q, got %q", override, cfg.RootDir)
	}
}

func TestLoad_DefaultRootUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WSCTL_ROOT", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RootDir != filepath.Join(home, defaultDirName) {
		t.Fatalf("expected default root, got %q", cfg.RootDir)
	}
}

func TestRemoteEnabled(t *testing.T) {
	t.Setenv("WSCTL_ROOT", t.TempDir())
	t.Setenv("BIJMANTRA_API_URL", "https://api.bijmantra.example")
	t.Setenv("BIJMANTRA_API_TOKEN", "tok")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.RemoteEnabled() {
		t.Fatalf("expected remote backend")
	}
	if cfg.APIToken != "tok" {
		t.Fatalf("expected token, got %q", cfg.APIToken)
	}
}
