// Package scanner provides reusable regex-based detection and auto-fixing
// over source files, plus the built-in security rule sets.
package scanner

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/log"
)

// Issue is one pattern match in one file.
type Issue struct {
	File        string
	Line        int
	Column      int
	PatternName string
	MatchedText string
	Message     string
	Severity    string
	Fix         string
}

// Blocking reports whether this issue should fail a lint run.
func (i *Issue) Blocking() bool {
	return i.Severity == "critical" || i.Severity == "high" || i.Severity == "error"
}

// PatternRule is a regex detection rule. MessageTemplate may reference
// {matched}, {file}, {line} and {column}.
type PatternRule struct {
	Name            string
	Pattern         string
	Severity        string
	MessageTemplate string
	FixTemplate     string
	CaseSensitive   bool
}

// FunctionCallRule flags calls to specific function names.
type FunctionCallRule struct {
	Name            string
	FunctionNames   []string
	Severity        string
	MessageTemplate string
	FixTemplate     string
}

// PatternDetector scans files against compiled pattern rules.
type PatternDetector struct {
	patterns []compiledRule
}

type compiledRule struct {
	rule PatternRule
	re   *regexp.Regexp
}

// NewPatternDetector compiles the given rules. Case-insensitive rules get
// the (?i) flag.
func NewPatternDetector(rules []PatternRule) (*PatternDetector, error) {
	patterns := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		expr := rule.Pattern
		if !rule.CaseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.NewRuleError(rule.Name, "compile pattern", err)
		}
		patterns = append(patterns, compiledRule{rule: rule, re: re})
	}
	return &PatternDetector{patterns: patterns}, nil
}

// ScanFile returns every pattern match in the file, line by line.
func (d *PatternDetector) ScanFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, cr := range d.patterns {
		for lineNum, line := range strings.Split(string(data), "\n") {
			for _, loc := range cr.re.FindAllStringIndex(line, -1) {
				matched := line[loc[0]:loc[1]]
				issues = append(issues, Issue{
					File:        path,
					Line:        lineNum + 1,
					Column:      loc[0],
					PatternName: cr.rule.Name,
					MatchedText: matched,
					Message:     expandTemplate(cr.rule.MessageTemplate, path, lineNum+1, loc[0], matched),
					Severity:    cr.rule.Severity,
					Fix:         expandFix(cr.rule.FixTemplate, path, matched),
				})
				log.Debug("pattern %q matched in %s: %s", cr.rule.Name, path, matched)
			}
		}
	}
	return issues, nil
}

// ApplyFixes rewrites matched text with each issue's fix, returning the
// modified content and the number of fixes applied. With dryRun the file
// is left untouched.
func (d *PatternDetector) ApplyFixes(path string, issues []Issue, dryRun bool) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}

	lines := strings.Split(string(data), "\n")
	applied := 0
	for _, issue := range issues {
		if issue.Fix == "" || issue.Line < 1 || issue.Line > len(lines) {
			continue
		}
		fixed := strings.Replace(lines[issue.Line-1], issue.MatchedText, issue.Fix, 1)
		if fixed != lines[issue.Line-1] {
			lines[issue.Line-1] = fixed
			applied++
			log.Debug("fixed %q in %s at line %d", issue.PatternName, path, issue.Line)
		}
	}

	content := strings.Join(lines, "\n")
	if !dryRun && applied > 0 {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", 0, err
		}
	}
	return content, applied, nil
}

// FunctionCallDetector flags calls to named functions.
type FunctionCallDetector struct {
	rules []compiledCallRule
}

type compiledCallRule struct {
	rule FunctionCallRule
	res  []*regexp.Regexp
}

func NewFunctionCallDetector(rules []FunctionCallRule) *FunctionCallDetector {
	compiled := make([]compiledCallRule, 0, len(rules))
	for _, rule := range rules {
		var res []*regexp.Regexp
		for _, name := range rule.FunctionNames {
			res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(name)+`\s*\(`))
		}
		compiled = append(compiled, compiledCallRule{rule: rule, res: res})
	}
	return &FunctionCallDetector{rules: compiled}
}

func (d *FunctionCallDetector) ScanFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, cr := range d.rules {
		for i, re := range cr.res {
			fn := cr.rule.FunctionNames[i]
			for lineNum, line := range strings.Split(string(data), "\n") {
				for _, loc := range re.FindAllStringIndex(line, -1) {
					msg := strings.NewReplacer(
						"{function}", fn,
						"{file}", path,
						"{line}", strconv.Itoa(lineNum+1),
					).Replace(cr.rule.MessageTemplate)
					issues = append(issues, Issue{
						File:        path,
						Line:        lineNum + 1,
						Column:      loc[0],
						PatternName: cr.rule.Name,
						MatchedText: fn,
						Message:     msg,
						Severity:    cr.rule.Severity,
						Fix:         cr.rule.FixTemplate,
					})
				}
			}
		}
	}
	return issues, nil
}

func expandTemplate(template, file string, line, column int, matched string) string {
	return strings.NewReplacer(
		"{matched}", matched,
		"{file}", file,
		"{line}", strconv.Itoa(line),
		"{column}", strconv.Itoa(column),
	).Replace(template)
}

func expandFix(template, file, matched string) string {
	if template == "" {
		return ""
	}
	return strings.NewReplacer(
		"{matched}", matched,
		"{file}", file,
	).Replace(template)
}
