package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigDir_ProjectLocal(t *testing.T) {
	project := t.TempDir()
	local := filepath.Join(project, ".config", ConfigDirName)
	if err := os.MkdirAll(local, 0755); err != nil {
		t.Fatal(err)
	}

	dir, err := ResolveConfigDir(project)
	if err != nil {
		t.Fatalf("ResolveConfigDir() error = %v", err)
	}
	if dir != local {
		t.Errorf("expected project-local dir %q, got %q", local, dir)
	}
}

func TestResolveConfigDir_XDGFallback(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := ResolveConfigDir(t.TempDir())
	if err != nil {
		t.Fatalf("ResolveConfigDir() error = %v", err)
	}
	want := filepath.Join(xdg, ConfigDirName)
	if dir != want {
		t.Errorf("expected XDG fallback %q, got %q", want, dir)
	}
}

func TestDefaultLogDir_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	dir, err := DefaultLogDir()
	if err != nil {
		t.Fatalf("DefaultLogDir() error = %v", err)
	}
	want := filepath.Join(xdg, ConfigDirName, "logs")
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}
