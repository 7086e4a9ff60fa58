package event

// Decision is the engine's verdict for one event.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
	Ask   Decision = "ask"
	Warn  Decision = "warn"
)

// HookResult is the outcome of evaluating one event: the decision, an
// aggregated human-readable message, and optionally a rewritten tool
// input. It is consumed by exactly one mapper FormatResponse call and
// then by the caller's exit-code logic.
type HookResult struct {
	Decision      Decision
	Message       string
	ModifiedInput map[string]any
}

// NewHookResult returns the default verdict: allow, no message.
func NewHookResult() HookResult {
	return HookResult{Decision: Allow}
}
