package config

// Severity classifies how serious a rule violation is. Error-severity
// issues turn a hook decision into Deny; everything else warns.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Icon returns the marker used when rendering an issue of this severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// RulesConfig holds the top-level custom rules plus check toggles.
type RulesConfig struct {
	CustomRules    []CustomRule `toml:"custom_rules" yaml:"custom_rules"`
	EnabledChecks  []string     `toml:"enabled_checks" yaml:"enabled_checks"`
	DisabledChecks []string     `toml:"disabled_checks" yaml:"disabled_checks"`
}

// CustomRule is a flat declarative rule. Pattern supports prefix, suffix,
// substring and exact forms via leading/trailing '*' only; full glob
// syntax is intentionally not supported here (profile activation globs
// are the globbing path).
type CustomRule struct {
	Name     string   `toml:"name" yaml:"name"`
	Pattern  string   `toml:"pattern" yaml:"pattern"`
	Message  string   `toml:"message" yaml:"message"`
	Severity Severity `toml:"severity" yaml:"severity"`

	// CheckContent switches the rule from path matching to content
	// matching: ContentPattern is searched in the event's prompt and
	// file content. Condition "must_contain" flips to allow-list
	// semantics (absence is the violation).
	CheckContent   bool   `toml:"check_content" yaml:"check_content"`
	ContentPattern string `toml:"content_pattern" yaml:"content_pattern"`
	Condition      string `toml:"condition" yaml:"condition"`

	// Required marks a plain pattern rule as a positive requirement
	// instead of a deny-list entry.
	Required bool `toml:"required" yaml:"required"`

	// ReplaceWith, when set, gives lint --fix a textual replacement.
	ReplaceWith string `toml:"replace_with" yaml:"replace_with"`

	// Triggers scope the rule to hook events. A rule with no triggers
	// never fires on events.
	Triggers []string `toml:"triggers" yaml:"triggers"`
}

// ModularRule is a named, toggleable bundle of custom rules with optional
// git/file/script sub-configuration, loaded from its own file under
// rules/active.
type ModularRule struct {
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description" yaml:"description"`
	Enabled     bool     `toml:"enabled" yaml:"enabled"`
	Severity    Severity `toml:"severity" yaml:"severity"`
	Triggers    []string `toml:"triggers" yaml:"triggers"`

	Git      *GitRuleConfig    `toml:"git" yaml:"git"`
	Scripts  *ScriptRuleConfig `toml:"scripts" yaml:"scripts"`
	Messages map[string]string `toml:"messages" yaml:"messages"`

	Rules []CustomRule `toml:"rules" yaml:"rules"`
}

// GitRuleConfig configures branch hygiene checks.
type GitRuleConfig struct {
	WarnWrongBranch   bool     `toml:"warn_wrong_branch" yaml:"warn_wrong_branch"`
	AllowedBranches   []string `toml:"allowed_branches" yaml:"allowed_branches"`
	ForbiddenBranches []string `toml:"forbidden_branches" yaml:"forbidden_branches"`
}

// ScriptRuleConfig configures where loose scripts are expected to live.
type ScriptRuleConfig struct {
	PreferredDirectory     string   `toml:"preferred_directory" yaml:"preferred_directory"`
	AlternativeDirectories []string `toml:"alternative_directories" yaml:"alternative_directories"`
	ScriptExtensions       []string `toml:"script_extensions" yaml:"script_extensions"`
}
