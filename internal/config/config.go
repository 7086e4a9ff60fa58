package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/project-lint/project-lint/internal/log"
)

// Config is the fully-resolved configuration the rule engine and lint
// runner consume. Load assembles it from config.toml, rules/core.toml,
// and the rules/active, rules/profiles and plugins directories.
type Config struct {
	Git   GitConfig   `toml:"git"`
	Files FilesConfig `toml:"files"`
	Rules RulesConfig `toml:"rules"`

	Core           CoreConfig    `toml:"-"`
	ModularRules   []ModularRule `toml:"-"`
	ActiveProfiles []Profile     `toml:"-"`
	ActivePlugins  []Plugin      `toml:"-"`
}

// GitConfig controls branch hygiene checks during lint runs.
type GitConfig struct {
	CheckBranch       bool     `toml:"check_branch"`
	AllowedBranches   []string `toml:"allowed_branches"`
	ForbiddenBranches []string `toml:"forbidden_branches"`
}

// FilesConfig controls tree traversal during lint runs.
type FilesConfig struct {
	IgnoredDirectories []string `toml:"ignored_directories"`
	MaxFileSizeBytes   int64    `toml:"max_file_size_bytes"`
}

// CoreConfig holds settings loaded from rules/core.toml.
type CoreConfig struct {
	Profiles ProfileConfig `toml:"profiles"`
	Plugins  PluginConfig  `toml:"plugins"`
}

type ProfileConfig struct {
	AutoDetect bool     `toml:"auto_detect"`
	Force      []string `toml:"force"`
}

type PluginConfig struct {
	CorePlugins     []string `toml:"core_plugins"`
	OptionalPlugins []string `toml:"optional_plugins"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		Git: GitConfig{
			CheckBranch:       true,
			ForbiddenBranches: []string{"main", "master"},
		},
		Files: FilesConfig{
			IgnoredDirectories: []string{".git", "node_modules", "target", "dist", "vendor"},
			MaxFileSizeBytes:   1 << 20,
		},
		Rules: RulesConfig{
			EnabledChecks: []string{"git_branch", "file_location", "security"},
		},
		Core: CoreConfig{
			Profiles: ProfileConfig{AutoDetect: true},
		},
	}
}

// Load resolves the config directory for projectPath and assembles the
// full configuration. A missing config.toml falls back to defaults;
// individual rule, profile or plugin files that fail to parse are skipped
// with a warning rather than aborting the load.
func Load(projectPath string) (*Config, error) {
	configDir, err := ResolveConfigDir(projectPath)
	if err != nil {
		return nil, err
	}
	return LoadFrom(configDir)
}

// LoadFrom assembles configuration from an explicit config directory.
func LoadFrom(configDir string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(configDir, "config.toml")
	if data, err := os.ReadFile(configFile); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		log.Debug("loaded config from %s", configFile)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	coreFile := filepath.Join(configDir, "rules", "core.toml")
	if data, err := os.ReadFile(coreFile); err == nil {
		if err := toml.Unmarshal(data, &cfg.Core); err != nil {
			log.Warn("failed to parse %s: %v", coreFile, err)
		}
	}

	cfg.ModularRules = loadModularRules(filepath.Join(configDir, "rules", "active"))
	cfg.ActiveProfiles = loadProfiles(filepath.Join(configDir, "rules", "profiles"))
	cfg.ActivePlugins = loadPlugins(filepath.Join(configDir, "plugins"))

	return cfg, nil
}

// loadModularRules reads one rule per file from dir. Both TOML and YAML
// rule files are accepted; files load in name order so issue aggregation
// is deterministic.
func loadModularRules(dir string) []ModularRule {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var rules []ModularRule
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ext := strings.ToLower(filepath.Ext(entry.Name()))

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("failed to read rule file %s: %v", path, err)
			continue
		}

		var rule ModularRule
		switch ext {
		case ".toml":
			err = toml.Unmarshal(data, &rule)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &rule)
		default:
			continue
		}
		if err != nil {
			log.Warn("failed to parse rule file %s: %v", path, err)
			continue
		}
		log.Debug("loaded rule: %s", rule.Name)
		rules = append(rules, rule)
	}
	return rules
}

func loadProfiles(dir string) []Profile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var profiles []Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("failed to read profile %s: %v", path, err)
			continue
		}
		var profile Profile
		if err := toml.Unmarshal(data, &profile); err != nil {
			log.Warn("failed to parse profile %s: %v", path, err)
			continue
		}
		log.Debug("loaded profile: %s", profile.Metadata.Name)
		profiles = append(profiles, profile)
	}
	return profiles
}

func loadPlugins(dir string) []Plugin {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var plugins []Plugin
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("failed to read plugin %s: %v", path, err)
			continue
		}
		var plugin Plugin
		if err := toml.Unmarshal(data, &plugin); err != nil {
			log.Warn("failed to parse plugin %s: %v", path, err)
			continue
		}
		plugins = append(plugins, plugin)
	}
	return plugins
}
