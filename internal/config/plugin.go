package config

// Plugin describes an external helper loaded from the plugins directory.
// Plugins are declarative only; project-lint reads their triggers but
// execution is up to the surrounding tooling.
type Plugin struct {
	Metadata PluginMetadata `toml:"metadata"`
	Trigger  PluginTrigger  `toml:"trigger"`
	Execute  PluginExecute  `toml:"execute"`
}

type PluginMetadata struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

type PluginTrigger struct {
	Events   []string `toml:"events"`
	Patterns []string `toml:"patterns"`
}

type PluginExecute struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}
