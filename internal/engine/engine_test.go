package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/event"
)

func TestMatchesTriggers(t *testing.T) {
	ev := &event.Event{
		Type: event.PreToolUse,
		Context: event.Context{
			OriginalPayload: map[string]any{
				"agent_action_name": "pre_mcp_tool_use",
				"hook_event_name":   "PreToolUse",
			},
		},
	}

	assert.False(t, MatchesTriggers(nil, ev), "no triggers must never match")
	assert.False(t, MatchesTriggers([]string{}, ev), "empty triggers must never match")

	assert.True(t, MatchesTriggers([]string{"all"}, ev))
	assert.True(t, MatchesTriggers([]string{"pre_tool_use"}, ev), "canonical name")
	assert.True(t, MatchesTriggers([]string{"pre_mcp_tool_use"}, ev), "windsurf action name")
	assert.True(t, MatchesTriggers([]string{"PreToolUse"}, ev), "claude event name")
	assert.False(t, MatchesTriggers([]string{"post_tool_use"}, ev))
}

func TestMatchesTriggersUnknownType(t *testing.T) {
	ev := &event.Event{Type: event.Unknown("custom_ide_event")}

	assert.True(t, MatchesTriggers([]string{"custom_ide_event"}, ev),
		"unknown event types still match their literal name")
	assert.False(t, MatchesTriggers([]string{"pre_tool_use"}, ev))
}

func TestEvaluateEventDenyList(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:     "no-env-files",
		Pattern:  "*.env",
		Message:  "env files are off limits",
		Severity: config.SeverityError,
		Triggers: []string{"pre_write_code"},
	}}

	eng := New(cfg)
	ev := &event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "config/secrets.env"},
	}

	result := eng.EvaluateEvent(ev)
	assert.Equal(t, event.Deny, result.Decision)
	assert.Contains(t, result.Message, "Project Lint violations detected:")
	assert.Contains(t, result.Message, "no-env-files: env files are off limits")
}

func TestEvaluateEventRequiredRuleDoesNotFire(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:     "tests-live-here",
		Pattern:  "tests/*",
		Message:  "tests should live under tests/",
		Severity: config.SeverityWarning,
		Required: true,
		Triggers: []string{"pre_write_code"},
	}}

	eng := New(cfg)
	ev := &event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "tests/foo_test.go"},
	}

	result := eng.EvaluateEvent(ev)
	assert.Equal(t, event.Allow, result.Decision)
	assert.Empty(t, result.Message)
}

func TestEvaluateEventContentRule(t *testing.T) {
	rule := config.CustomRule{
		Name:           "no-debugger",
		Pattern:        "*",
		Message:        "remove debugger statements",
		Severity:       config.SeverityWarning,
		CheckContent:   true,
		ContentPattern: "debugger;",
		Triggers:       []string{"pre_write_code"},
	}

	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{rule}
	eng := New(cfg)

	hit := eng.EvaluateEvent(&event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "src/app.js", FileContent: "debugger;\nlet x = 1;"},
	})
	assert.Equal(t, event.Warn, hit.Decision)

	miss := eng.EvaluateEvent(&event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "src/app.js", FileContent: "let x = 1;"},
	})
	assert.Equal(t, event.Allow, miss.Decision)
}

func TestEvaluateEventMustContainFlipsPolarity(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:           "license-header",
		Pattern:        "*.go",
		Message:        "missing license header",
		Severity:       config.SeverityInfo,
		CheckContent:   true,
		ContentPattern: "Copyright",
		Condition:      "must_contain",
		Triggers:       []string{"pre_write_code"},
	}}
	eng := New(cfg)

	missing := eng.EvaluateEvent(&event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "main.go", FileContent: "package main"},
	})
	assert.Equal(t, event.Warn, missing.Decision, "absence is the violation")

	present := eng.EvaluateEvent(&event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "main.go", FileContent: "// Copyright 2025\npackage main"},
	})
	assert.Equal(t, event.Allow, present.Decision)
}

func TestEvaluateEventAggregation(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{
		{
			Name:     "warn-rule",
			Pattern:  "*.tmp",
			Message:  "temp file",
			Severity: config.SeverityWarning,
			Triggers: []string{"all"},
		},
		{
			Name:     "error-rule",
			Pattern:  "*.tmp",
			Message:  "temp file blocked",
			Severity: config.SeverityError,
			Triggers: []string{"all"},
		},
	}
	eng := New(cfg)

	result := eng.EvaluateEvent(&event.Event{
		Type:    event.PreWriteCode,
		Context: event.Context{FilePath: "build/out.tmp"},
	})

	assert.Equal(t, event.Deny, result.Decision, "one error-severity issue denies")
	warnIdx := strings.Index(result.Message, "warn-rule")
	errIdx := strings.Index(result.Message, "error-rule")
	require.GreaterOrEqual(t, warnIdx, 0)
	require.GreaterOrEqual(t, errIdx, 0)
	assert.Less(t, warnIdx, errIdx, "issues render in configuration order")
}

func TestEvaluateEventModularRuleGating(t *testing.T) {
	rule := config.ModularRule{
		Name:     "bundle",
		Enabled:  false,
		Triggers: []string{"all"},
		Rules: []config.CustomRule{{
			Name:     "inner",
			Pattern:  "*",
			Message:  "fires on anything",
			Severity: config.SeverityWarning,
		}},
	}

	cfg := config.Default()
	cfg.ModularRules = []config.ModularRule{rule}
	eng := New(cfg)
	ev := &event.Event{Type: event.PreToolUse}

	assert.Equal(t, event.Allow, eng.EvaluateEvent(ev).Decision, "disabled bundle is skipped")

	cfg.ModularRules[0].Enabled = true
	assert.Equal(t, event.Warn, eng.EvaluateEvent(ev).Decision)

	cfg.ModularRules[0].Triggers = nil
	assert.Equal(t, event.Allow, eng.EvaluateEvent(ev).Decision, "bundle without triggers never fires")
}

func TestEvaluatePnpmEnforcement(t *testing.T) {
	dir := t.TempDir()
	pkg := `{"name": "demo", "packageManager": "pnpm@8.0.0"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o644))

	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:     "pnpm-workspace-enforcer",
		Pattern:  "*",
		Message:  "use pnpm",
		Severity: config.SeverityWarning,
		Triggers: []string{"pre_tool_use"},
	}}
	eng := New(cfg)

	ev := &event.Event{
		Type: event.PreToolUse,
		CWD:  dir,
		Context: event.Context{
			ToolInput: map[string]any{"input": "npm install express"},
		},
	}

	result := eng.EvaluateEvent(ev)
	assert.Equal(t, event.Warn, result.Decision)
	assert.Contains(t, result.Message, "Found: npm install express")
	assert.Contains(t, result.Message, "Suggested: pnpm install express")
	require.NotNil(t, result.ModifiedInput)
	assert.Equal(t, "pnpm install express", result.ModifiedInput["input"])
	assert.Equal(t, "npm install express", ev.Context.ToolInput["input"], "original input untouched")
}

func TestEvaluatePnpmSkipsNonPnpmProjects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "demo"}`), 0o644))

	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:     "pnpm-workspace-enforcer",
		Pattern:  "*",
		Severity: config.SeverityWarning,
		Triggers: []string{"pre_tool_use"},
	}}
	eng := New(cfg)

	ev := &event.Event{
		Type: event.PreToolUse,
		CWD:  dir,
		Context: event.Context{
			ToolInput: map[string]any{"input": "npm install express"},
		},
	}

	assert.Equal(t, event.Allow, eng.EvaluateEvent(ev).Decision)
}

func TestEvaluatePnpmIgnoresPostEvents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"packageManager": "pnpm@9.1.0"}`), 0o644))

	cfg := config.Default()
	cfg.Rules.CustomRules = []config.CustomRule{{
		Name:     "pnpm-workspace-enforcer",
		Pattern:  "*",
		Severity: config.SeverityWarning,
		Triggers: []string{"all"},
	}}
	eng := New(cfg)

	ev := &event.Event{
		Type: event.PostToolUse,
		CWD:  dir,
		Context: event.Context{
			ToolInput: map[string]any{"input": "npm test"},
		},
	}

	assert.Equal(t, event.Allow, eng.EvaluateEvent(ev).Decision,
		"rewriting after execution is pointless")
}

func TestIsPnpmWorkspaceMarkers(t *testing.T) {
	t.Run("lock file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{}`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte("lockfileVersion: 9"), 0o644))
		assert.True(t, isPnpmWorkspace(dir))
	})

	t.Run("workspace file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{}`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-workspace.yaml"), []byte("packages:\n  - apps/*"), 0o644))
		assert.True(t, isPnpmWorkspace(dir))
	})

	t.Run("no package.json disables detection", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte(""), 0o644))
		assert.False(t, isPnpmWorkspace(dir))
	})

	t.Run("unparseable package.json disables detection", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{not json"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte(""), 0o644))
		assert.False(t, isPnpmWorkspace(dir))
	})
}

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  string
		ok    bool
	}{
		{"windsurf input field", map[string]any{"input": "npm ci"}, "npm ci", true},
		{"claude tool_input field", map[string]any{"tool_input": "npm run build"}, "npm run build", true},
		{"generic command field", map[string]any{"command": "npm start"}, "npm start", true},
		{"input wins over command", map[string]any{"input": "a", "command": "b"}, "a", true},
		{"non-string skipped", map[string]any{"input": 42, "cmd": "npm test"}, "npm test", true},
		{"nil map", nil, "", false},
		{"no command field", map[string]any{"file_path": "a.txt"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractCommand(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
