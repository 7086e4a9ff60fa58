// Package engine evaluates declarative rules against canonical hook
// events. Evaluation is a pure function of (config, event): the engine
// holds no state between calls, so it is safe to construct fresh per hook
// invocation.
package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/event"
	"github.com/project-lint/project-lint/internal/log"
)

// pnpmEnforcerRule is the rule name that selects the pnpm workspace
// enforcement path instead of the generic pattern matcher.
const pnpmEnforcerRule = "pnpm-workspace-enforcer"

// Issue is one rule firing on one event. Issues are transient; they are
// aggregated into a HookResult immediately.
type Issue struct {
	Name     string
	Message  string
	Severity config.Severity
}

// Engine evaluates a configuration's rules against events.
type Engine struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// EvaluateEvent runs every enabled modular rule and top-level custom rule
// against ev and aggregates the detected issues into one verdict: Deny if
// any issue is Error severity, Warn if any issue fired at all, Allow
// otherwise. Issues appear in the message in configuration-declared order.
func (e *Engine) EvaluateEvent(ev *event.Event) event.HookResult {
	result := event.NewHookResult()
	var issues []Issue

	for _, rule := range e.cfg.ModularRules {
		if !rule.Enabled {
			continue
		}
		if !MatchesTriggers(rule.Triggers, ev) {
			continue
		}
		log.Debug("rule %q triggered by event %s", rule.Name, ev.Type)
		for _, custom := range rule.Rules {
			if issue := e.evaluateCustomRule(&custom, ev); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	for _, rule := range e.cfg.Rules.CustomRules {
		if !MatchesTriggers(rule.Triggers, ev) {
			continue
		}
		log.Debug("top-level rule %q triggered by event %s", rule.Name, ev.Type)
		if issue := e.evaluateCustomRule(&rule, ev); issue != nil {
			issues = append(issues, *issue)
		}
	}

	if len(issues) == 0 {
		return result
	}

	hasErrors := false
	var msg strings.Builder
	msg.WriteString("Project Lint violations detected:\n")

	for _, issue := range issues {
		if issue.Severity == config.SeverityError {
			hasErrors = true
		}
		fmt.Fprintf(&msg, "%s %s: %s\n", issue.Severity.Icon(), issue.Name, issue.Message)

		if issue.Name == pnpmEnforcerRule {
			if modified := rewriteNpmInput(ev.Context.ToolInput); modified != nil {
				result.ModifiedInput = modified
			}
		}
	}

	result.Message = msg.String()
	if hasErrors {
		result.Decision = event.Deny
	} else {
		result.Decision = event.Warn
	}
	return result
}

// MatchesTriggers reports whether any trigger matches the event. An empty
// trigger list never matches: a rule without explicit triggers must not
// fire on events. A trigger matches on the literal "all", on the
// canonical event type name, or on the IDE-native action/event name
// probed from the original payload, so rule authors can write either
// canonical or IDE-native trigger strings.
func MatchesTriggers(triggers []string, ev *event.Event) bool {
	if len(triggers) == 0 {
		return false
	}

	for _, trigger := range triggers {
		if trigger == "all" || trigger == ev.Type.String() {
			return true
		}
		if name, ok := event.PayloadString(ev.Context.OriginalPayload, "agent_action_name"); ok && trigger == name {
			return true
		}
		if name, ok := event.PayloadString(ev.Context.OriginalPayload, "hook_event_name"); ok && trigger == name {
			return true
		}
	}
	return false
}

func (e *Engine) evaluateCustomRule(rule *config.CustomRule, ev *event.Event) *Issue {
	matched := false
	if ev.Context.FilePath != "" && MatchesPattern(ev.Context.FilePath, rule.Pattern) {
		matched = true
	}
	if !matched && rule.Pattern == "*" {
		matched = true
	}
	if !matched {
		return nil
	}

	if rule.Name == pnpmEnforcerRule {
		return e.evaluatePnpmRule(rule, ev)
	}

	if rule.CheckContent {
		if rule.ContentPattern == "" {
			return nil
		}
		content := ev.Context.UserPrompt + ev.Context.FileContent
		contains := strings.Contains(content, rule.ContentPattern)

		violation := contains
		if rule.Condition == "must_contain" {
			violation = !contains
		}
		if violation {
			return &Issue{Name: rule.Name, Message: rule.Message, Severity: rule.Severity}
		}
		return nil
	}

	if !rule.Required {
		// Deny-list default: matching the pattern is the violation.
		return &Issue{Name: rule.Name, Message: rule.Message, Severity: rule.Severity}
	}
	return nil
}

// evaluatePnpmRule fires when an npm command is about to run inside a
// pnpm workspace. Rewriting after execution is useless, so only
// PreToolUse events are considered.
func (e *Engine) evaluatePnpmRule(rule *config.CustomRule, ev *event.Event) *Issue {
	if ev.Type != event.PreToolUse {
		return nil
	}

	cwd := ev.CWD
	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		} else {
			cwd = "."
		}
	}

	if !isPnpmWorkspace(cwd) {
		log.Debug("not a pnpm workspace, skipping pnpm enforcement")
		return nil
	}

	command, ok := extractCommand(ev.Context.ToolInput)
	if !ok || !strings.HasPrefix(command, "npm ") {
		return nil
	}

	log.Info("detected npm command in pnpm workspace: %s", command)
	rewritten := strings.Replace(command, "npm ", "pnpm ", 1)

	return &Issue{
		Name: rule.Name,
		Message: fmt.Sprintf(
			"🚫 This project uses pnpm (detected in package.json).\n\nFound: %s\nSuggested: %s\n\nThe command has been automatically rewritten to use pnpm.",
			command, rewritten,
		),
		Severity: rule.Severity,
	}
}

// rewriteNpmInput clones toolInput with its command-bearing field
// rewritten from npm to pnpm. Returns nil when there is nothing to
// rewrite.
func rewriteNpmInput(toolInput map[string]any) map[string]any {
	command, ok := extractCommand(toolInput)
	if !ok || !strings.HasPrefix(command, "npm ") {
		return nil
	}
	rewritten := strings.Replace(command, "npm ", "pnpm ", 1)

	for _, field := range []string{"input", "tool_input"} {
		if _, present := toolInput[field]; present {
			modified := make(map[string]any, len(toolInput))
			for k, v := range toolInput {
				modified[k] = v
			}
			modified[field] = rewritten
			return modified
		}
	}
	return nil
}
