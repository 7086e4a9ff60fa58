package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*", "a.txt", true},
		{"**/*", "deep/nested/a.txt", true},
		{"**/*.tf", "infra/main.tf", true},
		{"**/*.tf", "main.tf", true},
		{"**/*.tf", "main.tfvars", false},
		{"src/*.go", "src/a.go", true},
		{"src/*.go", "src/sub/a.go", false},
		{"src/**/*.go", "src/sub/deep/a.go", true},
		{"Dockerfile", "Dockerfile", true},
		{"Dockerfile", "sub/Dockerfile", false},
		{"*.json", "package.json", true},
		{"*.json", "config/settings.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.path, func(t *testing.T) {
			if got := globMatch(tt.pattern, tt.path); got != tt.want {
				t.Errorf("globMatch(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestGlobFiles(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"main.tf", "modules/vpc/main.tf", "README.md"} {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	matches := globFiles(root, "**/*.tf")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", matches)
	}
}
