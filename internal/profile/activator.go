// Package profile decides which configuration profiles apply to a project
// and event. Activation is recomputed on every invocation: both the
// project tree and the triggering event can change between calls, so
// results are never cached.
package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/engine"
	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
	"github.com/project-lint/project-lint/internal/log"
)

// headerSize bounds how much of a file a header-position content trigger
// reads, so scanning never pulls large binary or generated files in full.
const headerSize = 1024

// IsProfileActive reports whether any of the profile's activation
// mechanisms hits for the given project and optional event. Mechanisms
// are ORed; the cheap checks (event triggers, file existence, globs) run
// before content scanning.
func IsProfileActive(projectPath string, p *config.Profile, ev *event.Event) bool {
	activation := &p.Activation

	if ev != nil && engine.MatchesTriggers(activation.Events, ev) {
		log.Debug("profile %q activated by event %s", p.Metadata.Name, ev.Type)
		return true
	}

	for _, indicator := range activation.Indicators {
		if pathExists(filepath.Join(projectPath, indicator)) {
			log.Debug("profile %q activated by indicator %s", p.Metadata.Name, indicator)
			return true
		}
	}

	for _, path := range activation.Paths {
		if pathExists(filepath.Join(projectPath, path)) {
			log.Debug("profile %q activated by path %s", p.Metadata.Name, path)
			return true
		}
	}

	for _, pattern := range activation.Globs {
		if len(globFiles(projectPath, pattern)) > 0 {
			log.Debug("profile %q activated by glob %s", p.Metadata.Name, pattern)
			return true
		}
	}

	for _, trigger := range activation.Content {
		if contentTriggerHits(projectPath, &trigger) {
			log.Debug("profile %q activated by content match", p.Metadata.Name)
			return true
		}
	}

	return false
}

// ActiveProfiles filters profiles to the active ones, preserving input
// order.
func ActiveProfiles(projectPath string, profiles []config.Profile, ev *event.Event) []config.Profile {
	var active []config.Profile
	for _, p := range profiles {
		if IsProfileActive(projectPath, &p, ev) {
			active = append(active, p)
		}
	}
	return active
}

// Resolve applies the core profile settings on top of activation testing:
// profiles named in the force list are always active, and with
// auto_detect disabled they are the only active ones. Forced names with
// no loaded profile are warnings, not errors.
func Resolve(cfg *config.Config, projectPath string, ev *event.Event) []config.Profile {
	forced := make(map[string]bool, len(cfg.Core.Profiles.Force))
	for _, name := range cfg.Core.Profiles.Force {
		forced[name] = true
	}

	var active []config.Profile
	for _, p := range cfg.ActiveProfiles {
		switch {
		case forced[p.Metadata.Name]:
			delete(forced, p.Metadata.Name)
			active = append(active, p)
		case cfg.Core.Profiles.AutoDetect && IsProfileActive(projectPath, &p, ev):
			active = append(active, p)
		}
	}

	for name := range forced {
		log.Warn("forced profile %q: %v", name, errors.ErrProfileNotFound)
	}
	return active
}

func contentTriggerHits(projectPath string, trigger *config.ContentTrigger) bool {
	patterns := trigger.Globs
	if len(patterns) == 0 {
		patterns = []string{"**/*"}
	}

	for _, pattern := range patterns {
		for _, rel := range globFiles(projectPath, pattern) {
			if fileContainsAny(filepath.Join(projectPath, rel), trigger.Matches, trigger.Position) {
				return true
			}
		}
	}
	return false
}

// fileContainsAny reads the file (header window or whole file, depending
// on position) and tests substring containment of each match string.
// Read failures mean "no match", never an error: one unreadable file must
// not abort profile resolution.
func fileContainsAny(path string, matches []string, position config.MatchPosition) bool {
	if len(matches) == 0 {
		return false
	}

	var content []byte
	if position == config.MatchAny {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		content = data
	} else {
		f, err := os.Open(path)
		if err != nil {
			return false
		}
		buf := make([]byte, headerSize)
		n, err := f.Read(buf)
		f.Close()
		if err != nil && n == 0 {
			return false
		}
		content = buf[:n]
	}

	// Byte-wise substring search tolerates invalid UTF-8, which is the
	// lossy-decode behavior wanted for header sniffing.
	text := string(content)
	for _, m := range matches {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
