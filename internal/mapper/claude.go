package mapper

import (
	"encoding/json"

	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
)

// ClaudeMapper handles Claude Code hook payloads. The event name lives in
// hook_event_name and event fields are top-level. Responses use the
// continue/stopReason schema, with hookSpecificOutput carrying permission
// decisions for PreToolUse.
type ClaudeMapper struct{}

func (m *ClaudeMapper) Source() string { return "claude" }

var claudeEvents = map[string]event.Type{
	"PreToolUse":        event.PreToolUse,
	"PostToolUse":       event.PostToolUse,
	"UserPromptSubmit":  event.PreUserPrompt,
	"SessionStart":      event.SessionStart,
	"SessionEnd":        event.SessionEnd,
	"Stop":              event.Stop,
	"SubagentStop":      event.SubagentStop,
	"Notification":      event.Notification,
	"PermissionRequest": event.PermissionRequest,
}

// fileTools are Claude tools whose tool_input carries a file_path worth
// promoting to the canonical file context.
var fileTools = map[string]bool{
	"Read":  true,
	"Edit":  true,
	"Write": true,
}

func (m *ClaudeMapper) MapEvent(raw []byte) (*event.Event, error) {
	if len(raw) == 0 {
		return nil, errors.ErrEmptyPayload
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.NewMapperError(m.Source(), "parse payload", err)
	}

	eventName := payloadString(payload, "hook_event_name")
	eventType, ok := claudeEvents[eventName]
	if !ok {
		eventType = event.Unknown(eventName)
	}

	ctx := event.Context{
		IDESource:       "claude",
		OriginalPayload: payload,
	}

	switch eventType {
	case event.PreToolUse, event.PostToolUse:
		ctx.ToolName = payloadString(payload, "tool_name")
		ctx.ToolInput = payloadObject(payload, "tool_input")
		if eventType == event.PostToolUse {
			ctx.ToolResult = payload["tool_response"]
		}
		if fileTools[ctx.ToolName] {
			ctx.FilePath = payloadString(ctx.ToolInput, "file_path")
		}
	case event.PreUserPrompt:
		ctx.UserPrompt = payloadString(payload, "prompt")
	}

	return &event.Event{
		Type:      eventType,
		SessionID: payloadString(payload, "session_id"),
		CWD:       payloadString(payload, "cwd"),
		Context:   ctx,
	}, nil
}

func (m *ClaudeMapper) FormatResponse(result event.HookResult) (string, error) {
	response := map[string]any{
		"continue": true,
	}

	switch result.Decision {
	case event.Deny:
		response["continue"] = false
		if result.Message != "" {
			response["stopReason"] = result.Message
		}
	case event.Warn:
		if result.Message != "" {
			response["systemMessage"] = result.Message
		}
	case event.Ask:
		response["hookSpecificOutput"] = map[string]any{
			"permissionDecision":       "ask",
			"permissionDecisionReason": result.Message,
		}
	default:
		if result.ModifiedInput != nil {
			response["hookSpecificOutput"] = map[string]any{
				"permissionDecision": "allow",
				"updatedInput":       result.ModifiedInput,
			}
		}
	}

	out, err := json.Marshal(response)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
