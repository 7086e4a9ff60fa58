package config

// Profile is a named, versioned bundle of activation conditions plus
// domain-specific sub-configuration. Profiles load once at config-load
// time; whether one is "active" is recomputed per invocation against the
// current project state and triggering event.
type Profile struct {
	Metadata   ProfileMetadata   `toml:"metadata"`
	Activation ProfileActivation `toml:"activation"`
	Enable     ProfileEnable     `toml:"enable"`

	WebSpecific    *WebSpecificConfig    `toml:"web_specific"`
	DevOpsSpecific *DevOpsSpecificConfig `toml:"devops_specific"`
	Structure      *ProfileStructure     `toml:"structure"`
}

type ProfileMetadata struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Scope       string `toml:"scope"`
	Updated     string `toml:"updated"`
	Description string `toml:"description"`
}

// ProfileActivation lists the independent mechanisms that can activate a
// profile. They are ORed; any single hit activates.
type ProfileActivation struct {
	// Events are trigger strings matched against the hook event, using
	// the same multi-path matching as rule triggers.
	Events []string `toml:"events"`

	// Indicators and Paths are relative paths whose existence under the
	// project root activates the profile.
	Indicators []string `toml:"indicators"`
	Paths      []string `toml:"paths"`

	// Globs are file patterns resolved relative to the project root;
	// any filesystem match activates.
	Globs []string `toml:"globs"`

	// Content triggers scan candidate files for substrings.
	Content []ContentTrigger `toml:"content"`
}

// MatchPosition controls how much of a file a content trigger reads.
type MatchPosition string

const (
	// MatchHeader reads only the first 1024 bytes. The default, so
	// large binary or generated files are never read in full.
	MatchHeader MatchPosition = "header"
	// MatchAny reads the whole file.
	MatchAny MatchPosition = "any"
)

// ContentTrigger activates a profile when any of Matches appears in a
// file selected by Globs (default **/*).
type ContentTrigger struct {
	Globs    []string      `toml:"globs"`
	Matches  []string      `toml:"matches"`
	Position MatchPosition `toml:"position"`
}

type ProfileEnable struct {
	Domains []string `toml:"domains"`
	Plugins []string `toml:"plugins"`
}

type WebSpecificConfig struct {
	CheckHTMLSemantics    bool `toml:"check_html_semantics"`
	ValidateCSSProperties bool `toml:"validate_css_properties"`
	LintJavascript        bool `toml:"lint_javascript"`
	CheckAccessibility    bool `toml:"check_accessibility"`
	CheckSEOMeta          bool `toml:"check_seo_meta"`
}

type DevOpsSpecificConfig struct {
	CheckSecrets             bool `toml:"check_secrets"`
	ValidateYAML             bool `toml:"validate_yaml"`
	CheckDockerBestPractices bool `toml:"check_docker_best_practices"`
	ScanForHardcodedSecrets  bool `toml:"scan_for_hardcoded_secrets"`
	CheckSSLCertificates     bool `toml:"check_ssl_certificates"`
}

type ProfileStructure struct {
	ExpectedDirs  []string `toml:"expected_dirs"`
	ForbiddenDirs []string `toml:"forbidden_dirs"`
}
