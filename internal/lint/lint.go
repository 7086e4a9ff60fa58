// Package lint walks a project tree and applies the configured custom
// rules and built-in security scanners to it.
package lint

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/engine"
	"github.com/project-lint/project-lint/internal/log"
	"github.com/project-lint/project-lint/internal/profile"
	"github.com/project-lint/project-lint/internal/scanner"
)

// Issue is one lint finding.
type Issue struct {
	File     string
	Line     int
	Rule     string
	Message  string
	Severity config.Severity
}

// Report is the outcome of one lint run.
type Report struct {
	Issues         []Issue
	FilesScanned   int
	FixesApplied   int
	ActiveProfiles []string
}

// HasErrors reports whether any issue should fail the run.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == config.SeverityError {
			return true
		}
	}
	return false
}

// Runner applies rules and scanners to a project tree.
type Runner struct {
	cfg         *config.Config
	projectPath string
	security    *scanner.SecurityScanner
	fix         bool
}

func NewRunner(cfg *config.Config, projectPath string, fix bool) (*Runner, error) {
	security, err := scanner.NewSecurityScanner()
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, projectPath: projectPath, security: security, fix: fix}, nil
}

// Run walks the project and collects issues. Per-file read failures are
// logged and skipped; one unreadable file must not abort the run.
func (r *Runner) Run() (*Report, error) {
	report := &Report{}

	active := profile.Resolve(r.cfg, r.projectPath, nil)
	for _, p := range active {
		report.ActiveProfiles = append(report.ActiveProfiles, p.Metadata.Name)
	}
	scanSecurity := r.securityEnabled(active)

	// Required rules fire when NO file matches their pattern.
	requiredSeen := map[string]bool{}

	err := filepath.WalkDir(r.projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if r.ignoredDir(d.Name()) && path != r.projectPath {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(r.projectPath, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		report.FilesScanned++

		r.applyPathRules(rel, requiredSeen, report)

		if scanSecurity && r.scannable(d) {
			r.applySecurityScan(path, rel, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, rule := range r.pathRules() {
		if rule.Required && !requiredSeen[rule.Name] {
			report.Issues = append(report.Issues, Issue{
				Rule:     rule.Name,
				Message:  rule.Message,
				Severity: rule.Severity,
			})
		}
	}

	if r.cfg.Git.CheckBranch {
		checkBranch(r.projectPath, &r.cfg.Git, report)
	}

	return report, nil
}

// pathRules collects the custom rules that apply to lint runs: top-level
// rules plus those nested in enabled modular rules. Hook-only concerns
// (content conditions, pnpm enforcement) are skipped here.
func (r *Runner) pathRules() []config.CustomRule {
	var rules []config.CustomRule
	for _, mod := range r.cfg.ModularRules {
		if !mod.Enabled {
			continue
		}
		rules = append(rules, mod.Rules...)
	}
	rules = append(rules, r.cfg.Rules.CustomRules...)

	filtered := rules[:0]
	for _, rule := range rules {
		if rule.CheckContent || rule.Name == "pnpm-workspace-enforcer" || rule.Pattern == "*" {
			continue
		}
		filtered = append(filtered, rule)
	}
	return filtered
}

func (r *Runner) applyPathRules(rel string, requiredSeen map[string]bool, report *Report) {
	for _, rule := range r.pathRules() {
		if !engine.MatchesPattern(rel, rule.Pattern) {
			continue
		}
		if rule.Required {
			requiredSeen[rule.Name] = true
			continue
		}
		report.Issues = append(report.Issues, Issue{
			File:     rel,
			Rule:     rule.Name,
			Message:  rule.Message,
			Severity: rule.Severity,
		})
	}
}

func (r *Runner) applySecurityScan(path, rel string, report *Report) {
	found, err := r.security.ScanFile(path)
	if err != nil {
		log.Warn("failed to scan %s: %v", rel, err)
		return
	}
	if r.fix && len(found) > 0 {
		applied, err := r.security.ApplyFixes(path, found, false)
		if err != nil {
			log.Warn("failed to fix %s: %v", rel, err)
		} else {
			report.FixesApplied += applied
		}
	}
	for _, issue := range found {
		report.Issues = append(report.Issues, Issue{
			File:     rel,
			Line:     issue.Line,
			Rule:     issue.PatternName,
			Message:  issue.Message,
			Severity: scanSeverity(issue),
		})
	}
}

// securityEnabled gates secret scanning on either the enabled_checks list
// or an active profile that asks for it.
func (r *Runner) securityEnabled(active []config.Profile) bool {
	for _, check := range r.cfg.Rules.EnabledChecks {
		if check == "security" {
			return true
		}
	}
	for _, p := range active {
		if p.DevOpsSpecific != nil && (p.DevOpsSpecific.CheckSecrets || p.DevOpsSpecific.ScanForHardcodedSecrets) {
			return true
		}
	}
	return false
}

func (r *Runner) ignoredDir(name string) bool {
	for _, dir := range r.cfg.Files.IgnoredDirectories {
		if name == dir {
			return true
		}
	}
	return false
}

// scannable skips obvious binary formats; the security scanners are
// line-oriented.
func (r *Runner) scannable(d fs.DirEntry) bool {
	switch strings.ToLower(filepath.Ext(d.Name())) {
	case ".png", ".jpg", ".jpeg", ".gif", ".ico", ".pdf", ".zip", ".gz", ".tar", ".woff", ".woff2", ".so", ".a", ".o", ".exe":
		return false
	}
	if max := r.cfg.Files.MaxFileSizeBytes; max > 0 {
		if info, err := d.Info(); err == nil && info.Size() > max {
			return false
		}
	}
	return true
}

func scanSeverity(issue scanner.Issue) config.Severity {
	if issue.Blocking() {
		return config.SeverityError
	}
	if issue.Severity == "info" {
		return config.SeverityInfo
	}
	return config.SeverityWarning
}
