package mapper

import (
	"encoding/json"
	"testing"

	"github.com/project-lint/project-lint/internal/event"
)

func TestWindsurfMapEvent_WriteCode(t *testing.T) {
	payload := `{
		"agent_action_name": "pre_write_code",
		"trajectory_id": "traj-123",
		"timestamp": "2025-06-01T12:00:00Z",
		"tool_info": {
			"file_path": "src/app.ts",
			"edits": [
				{"old_string": "var x", "new_string": "const x"}
			]
		}
	}`

	m := &WindsurfMapper{}
	ev, err := m.MapEvent([]byte(payload))
	if err != nil {
		t.Fatalf("MapEvent() error = %v", err)
	}

	if ev.Type != event.PreWriteCode {
		t.Errorf("expected pre_write_code, got %s", ev.Type)
	}
	if ev.SessionID != "traj-123" {
		t.Errorf("expected session from trajectory_id, got %q", ev.SessionID)
	}
	if ev.Context.FilePath != "src/app.ts" {
		t.Errorf("expected file_path promoted, got %q", ev.Context.FilePath)
	}
	if len(ev.Context.Edits) != 1 || ev.Context.Edits[0].NewString != "const x" {
		t.Errorf("edits not mapped: %+v", ev.Context.Edits)
	}
	if ev.Context.IDESource != "windsurf" {
		t.Errorf("expected windsurf source tag, got %q", ev.Context.IDESource)
	}
}

func TestWindsurfMapEvent_RunCommand(t *testing.T) {
	payload := `{
		"agent_action_name": "pre_run_command",
		"tool_info": {"command_line": "npm install", "cwd": "/work"}
	}`

	ev, err := (&WindsurfMapper{}).MapEvent([]byte(payload))
	if err != nil {
		t.Fatalf("MapEvent() error = %v", err)
	}

	if ev.Type != event.PreRunCommand {
		t.Errorf("expected pre_run_command, got %s", ev.Type)
	}
	if ev.Context.Command != "npm install" {
		t.Errorf("expected command mapped, got %q", ev.Context.Command)
	}
	if ev.CWD != "/work" {
		t.Errorf("expected cwd from tool_info, got %q", ev.CWD)
	}
}

func TestWindsurfMapEvent_MCPToolUse(t *testing.T) {
	payload := `{
		"agent_action_name": "pre_mcp_tool_use",
		"tool_info": {
			"mcp_tool_name": "run_command",
			"mcp_tool_arguments": {"input": "npm test"}
		}
	}`

	ev, err := (&WindsurfMapper{}).MapEvent([]byte(payload))
	if err != nil {
		t.Fatalf("MapEvent() error = %v", err)
	}

	if ev.Type != event.PreToolUse {
		t.Errorf("expected pre_tool_use, got %s", ev.Type)
	}
	if ev.Context.ToolName != "run_command" {
		t.Errorf("tool name not mapped: %q", ev.Context.ToolName)
	}
	if got := ev.Context.ToolInput["input"]; got != "npm test" {
		t.Errorf("tool input not mapped: %v", ev.Context.ToolInput)
	}
}

func TestWindsurfMapEvent_UnknownAction(t *testing.T) {
	ev, err := (&WindsurfMapper{}).MapEvent([]byte(`{"agent_action_name": "custom_thing"}`))
	if err != nil {
		t.Fatalf("MapEvent() error = %v", err)
	}
	if ev.Type != event.Unknown("custom_thing") {
		t.Errorf("expected passthrough type, got %s", ev.Type)
	}
	if ev.Type.Known() {
		t.Error("passthrough type should not be canonical")
	}
}

func TestWindsurfMapEvent_MalformedJSON(t *testing.T) {
	if _, err := (&WindsurfMapper{}).MapEvent([]byte(`{not json`)); err == nil {
		t.Fatal("expected error on malformed payload")
	}
}

func TestWindsurfFormatResponse(t *testing.T) {
	m := &WindsurfMapper{}

	tests := []struct {
		name   string
		result event.HookResult
		want   map[string]any
	}{
		{
			name:   "allow",
			result: event.NewHookResult(),
			want:   map[string]any{"decision": "allow"},
		},
		{
			name:   "deny",
			result: event.HookResult{Decision: event.Deny, Message: "blocked"},
			want:   map[string]any{"decision": "deny"},
		},
		{
			name: "warn with rewrite",
			result: event.HookResult{
				Decision:      event.Warn,
				Message:       "use pnpm",
				ModifiedInput: map[string]any{"input": "pnpm install"},
			},
			want: map[string]any{
				"decision":       "warn",
				"modified_input": map[string]any{"input": "pnpm install"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := m.FormatResponse(tt.result)
			if err != nil {
				t.Fatalf("FormatResponse() error = %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if got["decision"] != tt.want["decision"] {
				t.Errorf("decision = %v, want %v", got["decision"], tt.want["decision"])
			}
			if want, ok := tt.want["modified_input"]; ok {
				mi, _ := got["modified_input"].(map[string]any)
				wantMI := want.(map[string]any)
				if mi["input"] != wantMI["input"] {
					t.Errorf("modified_input = %v, want %v", mi, wantMI)
				}
			}
		})
	}
}
