package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/project-lint/project-lint/internal/log"
)

// isPnpmWorkspace reports whether the project at path uses pnpm. Markers
// are checked in priority order: a packageManager field in package.json
// declaring pnpm, a pnpm-workspace.yaml/.yml file, then a pnpm-lock.yaml.
// A missing or unparseable package.json means "not a workspace".
func isPnpmWorkspace(path string) bool {
	data, err := os.ReadFile(filepath.Join(path, "package.json"))
	if err != nil {
		return false
	}

	var pkg map[string]any
	if err := json.Unmarshal(data, &pkg); err != nil {
		return false
	}

	if pm, ok := pkg["packageManager"].(string); ok && strings.HasPrefix(pm, "pnpm") {
		log.Info("detected pnpm workspace via packageManager: %s", pm)
		return true
	}

	if fileExists(filepath.Join(path, "pnpm-workspace.yaml")) ||
		fileExists(filepath.Join(path, "pnpm-workspace.yml")) {
		log.Info("detected pnpm workspace via pnpm-workspace.yaml")
		return true
	}

	if fileExists(filepath.Join(path, "pnpm-lock.yaml")) {
		log.Info("detected pnpm workspace via pnpm-lock.yaml")
		return true
	}

	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// extractCommand pulls a command string out of a tool input object,
// trying the Windsurf field, the Claude field, then a generic fallback
// list. Non-string values are skipped.
func extractCommand(toolInput map[string]any) (string, bool) {
	if toolInput == nil {
		return "", false
	}

	if s, ok := toolInput["input"].(string); ok {
		return s, true
	}
	if s, ok := toolInput["tool_input"].(string); ok {
		return s, true
	}
	for _, field := range []string{"command", "cmd", "input", "tool_input"} {
		if s, ok := toolInput[field].(string); ok {
			return s, true
		}
	}
	return "", false
}
