package event

import "testing"

func TestTypeKnown(t *testing.T) {
	if !PreToolUse.Known() {
		t.Error("pre_tool_use should be canonical")
	}
	if PreToolUse.String() != "pre_tool_use" {
		t.Errorf("canonical types use snake_case, got %q", PreToolUse.String())
	}

	custom := Unknown("some_ide_event")
	if custom.Known() {
		t.Error("passthrough type should not be canonical")
	}
	if custom.String() != "some_ide_event" {
		t.Errorf("passthrough type keeps the source name, got %q", custom.String())
	}
}

func TestNewHookResult(t *testing.T) {
	result := NewHookResult()
	if result.Decision != Allow {
		t.Errorf("default decision is allow, got %s", result.Decision)
	}
	if result.Message != "" || result.ModifiedInput != nil {
		t.Errorf("default result carries no payload: %+v", result)
	}
}

func TestPayloadString(t *testing.T) {
	payload := map[string]any{"name": "value", "count": 3}

	if s, ok := PayloadString(payload, "name"); !ok || s != "value" {
		t.Errorf("PayloadString = %q, %v", s, ok)
	}
	if _, ok := PayloadString(payload, "count"); ok {
		t.Error("non-string values are rejected")
	}
	if _, ok := PayloadString(payload, "missing"); ok {
		t.Error("missing keys are rejected")
	}
	if _, ok := PayloadString(nil, "name"); ok {
		t.Error("nil payloads are tolerated")
	}
}
