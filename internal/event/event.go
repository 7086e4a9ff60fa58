package event

// Type identifies the canonical kind of an agent event. Known types use
// snake_case string forms so they can be compared directly against rule
// trigger strings. Unrecognized source event names are carried through
// verbatim, which lets rules match on IDE-native names the canonical set
// doesn't cover.
type Type string

const (
	// Session lifecycle
	SessionStart Type = "session_start"
	SessionEnd   Type = "session_end"

	// Tool use
	PreToolUse  Type = "pre_tool_use"
	PostToolUse Type = "post_tool_use"

	// File operations
	PreReadCode   Type = "pre_read_code"
	PostReadCode  Type = "post_read_code"
	PreWriteCode  Type = "pre_write_code"
	PostWriteCode Type = "post_write_code"

	// Command execution
	PreRunCommand  Type = "pre_run_command"
	PostRunCommand Type = "post_run_command"

	// Interaction
	PreUserPrompt     Type = "pre_user_prompt"
	PostModelResponse Type = "post_model_response"

	// Notifications and control
	Notification      Type = "notification"
	PermissionRequest Type = "permission_request"
	Stop              Type = "stop"
	SubagentStop      Type = "subagent_stop"
)

var knownTypes = map[Type]bool{
	SessionStart:      true,
	SessionEnd:        true,
	PreToolUse:        true,
	PostToolUse:       true,
	PreReadCode:       true,
	PostReadCode:      true,
	PreWriteCode:      true,
	PostWriteCode:     true,
	PreRunCommand:     true,
	PostRunCommand:    true,
	PreUserPrompt:     true,
	PostModelResponse: true,
	Notification:      true,
	PermissionRequest: true,
	Stop:              true,
	SubagentStop:      true,
}

// Unknown wraps a source-reported event name that has no canonical mapping.
func Unknown(name string) Type {
	return Type(name)
}

// Known reports whether t is one of the canonical event types.
func (t Type) Known() bool {
	return knownTypes[t]
}

func (t Type) String() string {
	return string(t)
}

// Event is one agent action occurrence, normalized from a source payload.
// Events are built fresh by a mapper, never mutated afterwards, and
// discarded after evaluation.
type Event struct {
	Type      Type
	SessionID string
	Timestamp string
	CWD       string
	Context   Context
}

// Context carries the event-type-specific fields. Different event types
// populate different subsets; zero values mean "not provided".
type Context struct {
	// File context
	FilePath    string
	FileContent string
	Edits       []FileEdit

	// Tool context
	ToolName   string
	ToolInput  map[string]any
	ToolResult any

	// Command context
	Command  string
	ExitCode *int

	// Interaction context
	UserPrompt    string
	ModelResponse string

	// IDESource names the mapper that produced this event.
	IDESource string

	// OriginalPayload retains the raw source payload. The rule engine
	// probes it for IDE-specific fields (agent_action_name,
	// hook_event_name) that the canonical model does not promote.
	OriginalPayload map[string]any
}

// FileEdit is one textual replacement within a write event.
type FileEdit struct {
	OldString string
	NewString string
	StartLine int
	EndLine   int
}

// PayloadString extracts a string field from a raw payload, tolerating a
// nil payload, a missing key, or a non-string value. Keeping this probe in
// one place avoids scattering type assertions through the engine.
func PayloadString(payload map[string]any, key string) (string, bool) {
	if payload == nil {
		return "", false
	}
	s, ok := payload[key].(string)
	return s, ok
}
