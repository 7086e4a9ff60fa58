package config

import (
	"os"
	"path/filepath"
)

// ConfigDirName is the directory name used under the project's .config
// directory and under the user configuration root.
const ConfigDirName = "project-lint"

// ResolveConfigDir locates the configuration directory for a project.
// Resolution order: project-local .config/project-lint if it exists, then
// $XDG_CONFIG_HOME/project-lint, then ~/.config/project-lint.
func ResolveConfigDir(projectPath string) (string, error) {
	projectCfg := filepath.Join(projectPath, ".config", ConfigDirName)
	if info, err := os.Stat(projectCfg); err == nil && info.IsDir() {
		return projectCfg, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// DefaultLogDir returns the per-user data directory for hook logs,
// honoring XDG_DATA_HOME.
func DefaultLogDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDirName, "logs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", ConfigDirName, "logs"), nil
}
