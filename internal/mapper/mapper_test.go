package mapper

import (
	"testing"

	"github.com/project-lint/project-lint/internal/event"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"windsurf", "windsurf"},
		{"generic", "windsurf"},
		{"claude", "claude"},
		{"kiro", "kiro"},
		{"vscode-future", "windsurf"},
		{"", "windsurf"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := Select(tt.source).Source(); got != tt.want {
				t.Errorf("Select(%q).Source() = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestKiroMapEvent(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantType event.Type
		wantFile string
	}{
		{
			name:     "event field with underscore name",
			payload:  `{"event": "file_save", "file": "src/a.go"}`,
			wantType: event.PostWriteCode,
			wantFile: "src/a.go",
		},
		{
			name:     "type field with dotted name",
			payload:  `{"type": "file.create", "path": "src/b.go"}`,
			wantType: event.PostWriteCode,
			wantFile: "src/b.go",
		},
		{
			name:     "prompt submit",
			payload:  `{"event": "prompt_submit", "prompt": "hi"}`,
			wantType: event.PreUserPrompt,
		},
		{
			name:     "unknown event passes through",
			payload:  `{"event": "agent_hook_fired"}`,
			wantType: event.Unknown("agent_hook_fired"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := (&KiroMapper{}).MapEvent([]byte(tt.payload))
			if err != nil {
				t.Fatalf("MapEvent() error = %v", err)
			}
			if ev.Type != tt.wantType {
				t.Errorf("type = %s, want %s", ev.Type, tt.wantType)
			}
			if ev.Context.FilePath != tt.wantFile {
				t.Errorf("file = %q, want %q", ev.Context.FilePath, tt.wantFile)
			}
		})
	}
}

func TestKiroFormatResponseIsEmpty(t *testing.T) {
	out, err := (&KiroMapper{}).FormatResponse(event.HookResult{Decision: event.Deny, Message: "no"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("kiro responses carry no body, got %q", out)
	}
}
