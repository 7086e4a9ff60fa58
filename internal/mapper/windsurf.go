package mapper

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
)

// WindsurfMapper handles Windsurf hook payloads: the event name lives in
// agent_action_name and the event-specific fields are nested under
// tool_info. It doubles as the general-purpose fallback mapper.
type WindsurfMapper struct{}

func (m *WindsurfMapper) Source() string { return "windsurf" }

var windsurfEvents = map[string]event.Type{
	"pre_read_code":         event.PreReadCode,
	"post_read_code":        event.PostReadCode,
	"pre_write_code":        event.PreWriteCode,
	"post_write_code":       event.PostWriteCode,
	"pre_run_command":       event.PreRunCommand,
	"post_run_command":      event.PostRunCommand,
	"pre_mcp_tool_use":      event.PreToolUse,
	"post_mcp_tool_use":     event.PostToolUse,
	"pre_user_prompt":       event.PreUserPrompt,
	"post_cascade_response": event.PostModelResponse,
}

func (m *WindsurfMapper) MapEvent(raw []byte) (*event.Event, error) {
	if len(raw) == 0 {
		return nil, errors.ErrEmptyPayload
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.NewMapperError(m.Source(), "parse payload", err)
	}

	actionName := payloadString(payload, "agent_action_name")
	eventType, ok := windsurfEvents[actionName]
	if !ok {
		eventType = event.Unknown(actionName)
	}

	toolInfo := payloadObject(payload, "tool_info")

	ctx := event.Context{
		IDESource:       "windsurf",
		OriginalPayload: payload,
	}

	switch eventType {
	case event.PreReadCode, event.PostReadCode:
		ctx.FilePath = payloadString(toolInfo, "file_path")
	case event.PreWriteCode, event.PostWriteCode:
		ctx.FilePath = payloadString(toolInfo, "file_path")
		if edits, ok := toolInfo["edits"].([]any); ok {
			for _, e := range edits {
				edit, ok := e.(map[string]any)
				if !ok {
					continue
				}
				ctx.Edits = append(ctx.Edits, event.FileEdit{
					OldString: payloadString(edit, "old_string"),
					NewString: payloadString(edit, "new_string"),
				})
			}
		}
	case event.PreRunCommand, event.PostRunCommand:
		ctx.Command = payloadString(toolInfo, "command_line")
	case event.PreToolUse, event.PostToolUse:
		ctx.ToolName = payloadString(toolInfo, "mcp_tool_name")
		ctx.ToolInput = payloadObject(toolInfo, "mcp_tool_arguments")
		if eventType == event.PostToolUse {
			ctx.ToolResult = toolInfo["mcp_result"]
		}
	case event.PreUserPrompt:
		ctx.UserPrompt = payloadString(toolInfo, "user_prompt")
	case event.PostModelResponse:
		ctx.ModelResponse = payloadString(toolInfo, "response")
	}

	// Windsurf puts cwd under tool_info for command events only.
	cwd := payloadString(toolInfo, "cwd")

	return &event.Event{
		Type:      eventType,
		SessionID: payloadString(payload, "trajectory_id"),
		Timestamp: payloadString(payload, "timestamp"),
		CWD:       cwd,
		Context:   ctx,
	}, nil
}

func (m *WindsurfMapper) FormatResponse(result event.HookResult) (string, error) {
	response := map[string]any{}

	switch result.Decision {
	case event.Deny:
		if result.Message != "" {
			fmt.Fprintln(os.Stderr, result.Message)
		}
		response["decision"] = "deny"
	case event.Warn:
		if result.Message != "" {
			fmt.Fprintf(os.Stderr, "⚠️  %s\n", result.Message)
		}
		response["decision"] = "warn"
		if result.ModifiedInput != nil {
			response["modified_input"] = result.ModifiedInput
		}
	case event.Ask:
		if result.Message != "" {
			fmt.Fprintf(os.Stderr, "❓ %s\n", result.Message)
		}
		response["decision"] = "ask"
	default:
		response["decision"] = "allow"
	}

	out, err := json.Marshal(response)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
