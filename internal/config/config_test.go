package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("RIGID2D_TEST_KEY", "set")
	if got := GetEnv("RIGID2D_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want %q", got, "set")
	}
	if got := GetEnv("RIGID2D_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want %q", got, "fallback")
	}
}

func TestLoadSandboxDefaults(t *testing.T) {
	t.Setenv("RIGID2D_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadSandbox()
	if err != nil {
		t.Fatalf("LoadSandbox: %v", err)
	}
	if cfg != DefaultSandbox() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadSandboxFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	data := "restitution: 0.5\nbodies: 3\ngravity_on: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIGID2D_CONFIG", path)

	cfg, err := LoadSandbox()
	if err != nil {
		t.Fatalf("LoadSandbox: %v", err)
	}
	if cfg.Restitution != 0.5 || cfg.Bodies != 3 || !cfg.GravityOn {
		t.Errorf("config = %+v, want file values applied over defaults", cfg)
	}
	// Unspecified keys keep their defaults.
	if cfg.MinRadius != DefaultSandbox().MinRadius {
		t.Errorf("MinRadius = %v, want default", cfg.MinRadius)
	}
}

func TestLoadSandboxEnvOverride(t *testing.T) {
	t.Setenv("RIGID2D_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RIGID2D_RESTITUTION", "0.25")

	cfg, err := LoadSandbox()
	if err != nil {
		t.Fatalf("LoadSandbox: %v", err)
	}
	if cfg.Restitution != 0.25 {
		t.Errorf("Restitution = %v, want env override 0.25", cfg.Restitution)
	}
}

func TestLoadSandboxRejectsBadValues(t *testing.T) {
	t.Setenv("RIGID2D_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RIGID2D_RESTITUTION", "1.5")

	if _, err := LoadSandbox(); err == nil {
		t.Error("restitution 1.5 accepted, want error")
	}
}

func TestLoadSandboxRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIGID2D_CONFIG", path)

	if _, err := LoadSandbox(); err == nil {
		t.Error("malformed file accepted, want error")
	}
}
