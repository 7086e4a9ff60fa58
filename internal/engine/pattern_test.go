package engine

import "testing"

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{"wildcard matches everything", "any/path.txt", "*", true},
		{"suffix match", "config/secrets.env", "*.env", true},
		{"suffix mismatch", "config/secrets.environment", "*.env", false},
		{"prefix match", "scripts/deploy.sh", "scripts/*", true},
		{"prefix mismatch", "tools/deploy.sh", "scripts/*", false},
		{"substring match", "src/node_modules/pkg/index.js", "*node_modules*", true},
		{"substring mismatch", "src/lib/index.js", "*node_modules*", false},
		{"exact match", "Makefile", "Makefile", true},
		{"exact mismatch", "makefile", "Makefile", false},
		{"no glob segments", "src/a.go", "src/*.go", false},
		{"empty pattern", "src/a.go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPattern(tt.path, tt.pattern); got != tt.want {
				t.Errorf("MatchesPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}
