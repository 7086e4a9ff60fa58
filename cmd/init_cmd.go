package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	plerrors "github.com/project-lint/project-lint/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project-lint configuration",
	Long: `Create .config/project-lint/ in the current project with a default
config.toml, an example modular rule and an example profile.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

const defaultConfigTOML = `[git]
check_branch = true
forbidden_branches = ["main", "master"]

[files]
ignored_directories = [".git", "node_modules", "target", "dist", "vendor"]

[rules]
enabled_checks = ["git_branch", "file_location", "security"]

[[rules.custom_rules]]
name = "no-env-files"
pattern = "*.env"
message = "Environment files must not be committed"
severity = "error"
triggers = ["pre_write_code", "PreToolUse"]
`

const exampleRuleTOML = `name = "pnpm-enforcement"
description = "Keep npm out of pnpm workspaces"
enabled = true
severity = "warning"
triggers = ["pre_tool_use"]

[[rules]]
name = "pnpm-workspace-enforcer"
pattern = "*"
message = "Use pnpm instead of npm in this workspace"
severity = "warning"
triggers = ["pre_tool_use"]
`

const exampleProfileTOML = `[metadata]
name = "devops"
version = "1.0.0"
scope = "project"
updated = "2025-01-01"
description = "Infrastructure-heavy projects"

[activation]
indicators = ["Dockerfile", "docker-compose.yml"]
globs = ["**/*.tf"]

[enable]
domains = ["devops"]

[devops_specific]
check_secrets = true
scan_for_hardcoded_secrets = true
`

func runInit(cmd *cobra.Command, args []string) error {
	configDir := filepath.Join(".", ".config", "project-lint")

	if _, err := os.Stat(filepath.Join(configDir, "config.toml")); err == nil && !initForce {
		return plerrors.ErrAlreadyExists
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(configDir, "config.toml"), defaultConfigTOML},
		{filepath.Join(configDir, "rules", "active", "pnpm.toml"), exampleRuleTOML},
		{filepath.Join(configDir, "rules", "profiles", "devops.toml"), exampleProfileTOML},
	}

	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f.path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nproject-lint initialized. Run 'project-lint lint' to check the project.")
	return nil
}
