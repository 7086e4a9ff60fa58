package mapper

import (
	"encoding/json"

	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
)

// KiroMapper handles Kiro hook payloads. Kiro names its event in either
// an "event" or "type" field and keeps file/prompt fields top-level. Its
// shell hooks read no response body; only the process exit code carries
// the decision.
type KiroMapper struct{}

func (m *KiroMapper) Source() string { return "kiro" }

var kiroEvents = map[string]event.Type{
	"file_save":     event.PostWriteCode,
	"file.save":     event.PostWriteCode,
	"file_create":   event.PostWriteCode,
	"file.create":   event.PostWriteCode,
	"prompt_submit": event.PreUserPrompt,
	"prompt.submit": event.PreUserPrompt,
	"turn_complete": event.PostModelResponse,
	"turn.complete": event.PostModelResponse,
}

func (m *KiroMapper) MapEvent(raw []byte) (*event.Event, error) {
	if len(raw) == 0 {
		return nil, errors.ErrEmptyPayload
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.NewMapperError(m.Source(), "parse payload", err)
	}

	eventName := payloadString(payload, "event")
	if eventName == "" {
		eventName = payloadString(payload, "type")
	}
	eventType, ok := kiroEvents[eventName]
	if !ok {
		eventType = event.Unknown(eventName)
	}

	ctx := event.Context{
		IDESource:       "kiro",
		OriginalPayload: payload,
	}

	if path := payloadString(payload, "file"); path != "" {
		ctx.FilePath = path
	} else {
		ctx.FilePath = payloadString(payload, "path")
	}
	ctx.UserPrompt = payloadString(payload, "prompt")

	return &event.Event{
		Type:      eventType,
		SessionID: payloadString(payload, "session_id"),
		Context:   ctx,
	}, nil
}

func (m *KiroMapper) FormatResponse(result event.HookResult) (string, error) {
	return "", nil
}
