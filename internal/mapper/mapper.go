// Package mapper translates between source-specific hook payloads and the
// canonical event model. Each supported source has its own JSON schema and
// its own response contract; the calling agent only understands its own.
package mapper

import (
	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
	"github.com/project-lint/project-lint/internal/log"
)

// Mapper adapts one hook source. MapEvent never fails on unrecognized
// event names (they become Unknown types); it fails only on malformed
// JSON, which callers treat as "no issues, allow".
type Mapper interface {
	// Source returns the tag stored in EventContext.IDESource.
	Source() string
	// MapEvent parses a raw payload into a canonical event.
	MapEvent(raw []byte) (*event.Event, error)
	// FormatResponse serializes a verdict into the source's response
	// schema. An empty string means nothing should be written.
	FormatResponse(result event.HookResult) (string, error)
}

// Select returns the mapper for a --source value. Unrecognized sources
// fall back to the windsurf mapper with a warning; a hook that refused to
// run on an unknown source flag would block every agent action.
func Select(source string) Mapper {
	switch source {
	case "windsurf", "generic":
		return &WindsurfMapper{}
	case "claude":
		return &ClaudeMapper{}
	case "kiro":
		return &KiroMapper{}
	default:
		log.Warn("%v %q, defaulting to windsurf mapper", errors.ErrUnknownSource, source)
		return &WindsurfMapper{}
	}
}

// payloadString reads a string field from a decoded JSON object.
func payloadString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// payloadObject reads a nested JSON object field.
func payloadObject(m map[string]any, key string) map[string]any {
	o, _ := m[key].(map[string]any)
	return o
}
