// Package hooklog persists one append-only record per evaluated hook
// event, for audit and statistics. Storage is newline-delimited JSON, one
// file per UTC calendar day.
package hooklog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/errors"
	"github.com/project-lint/project-lint/internal/event"
	"github.com/project-lint/project-lint/internal/log"
)

// Entry is one hook-log record. Entries are append-only; nothing in this
// system mutates or deletes them.
type Entry struct {
	Timestamp  time.Time `json:"timestamp"`
	EventType  string    `json:"event_type"`
	Source     string    `json:"source"`
	SessionID  string    `json:"session_id,omitempty"`
	FilePath   string    `json:"file_path,omitempty"`
	ToolName   string    `json:"tool_name,omitempty"`
	Command    string    `json:"command,omitempty"`
	Decision   string    `json:"decision"`
	Message    string    `json:"message,omitempty"`
	DurationMs *int64    `json:"duration_ms,omitempty"`
}

// Logger appends entries to the current day's file. Each write opens,
// appends and closes independently, so a crash loses at most the
// in-flight entry and no file handle is held across calls.
type Logger struct {
	logFile string
}

// New creates a logger writing under logDir, creating the directory if
// needed. An empty logDir uses the per-user data directory.
func New(logDir string) (*Logger, error) {
	if logDir == "" {
		dir, err := config.DefaultLogDir()
		if err != nil {
			return nil, err
		}
		logDir = dir
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, errors.NewPathError(logDir, "create log dir", err)
	}

	name := fmt.Sprintf("hook-log-%s.jsonl", time.Now().UTC().Format("2006-01-02"))
	logFile := filepath.Join(logDir, name)
	log.Info("hook logging to %s", logFile)

	return &Logger{logFile: logFile}, nil
}

// Path returns the current day's log file path.
func (l *Logger) Path() string {
	return l.logFile
}

// LogEvent appends one entry projecting the event and its verdict.
// durationMs may be negative to mean "not recorded".
func (l *Logger) LogEvent(ev *event.Event, decision event.Decision, message string, durationMs int64) error {
	entry := Entry{
		Timestamp: time.Now().UTC(),
		EventType: ev.Type.String(),
		Source:    ev.Context.IDESource,
		SessionID: ev.SessionID,
		FilePath:  ev.Context.FilePath,
		ToolName:  ev.Context.ToolName,
		Command:   ev.Context.Command,
		Decision:  string(decision),
		Message:   message,
	}
	if durationMs >= 0 {
		entry.DurationMs = &durationMs
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	log.Debug("logged hook event: %s", entry.EventType)
	return nil
}

// Recent returns the last limit parseable entries from the current day's
// file. Malformed lines are skipped with a warning. limit <= 0 returns
// everything. Entries from previous days' files are not included.
func (l *Logger) Recent(limit int) ([]Entry, error) {
	data, err := os.ReadFile(l.logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	start := 0
	if limit > 0 && len(lines) > limit {
		start = len(lines) - limit
	}

	var entries []Entry
	for _, line := range lines[start:] {
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			log.Warn("failed to parse log line: %s", line)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Stats folds over the current day's entries. Calling it twice without an
// intervening LogEvent yields identical results; it is a pure read.
func (l *Logger) Stats() (*Stats, error) {
	entries, err := l.Recent(0)
	if err != nil {
		return nil, err
	}

	stats := NewStats()
	for _, entry := range entries {
		stats.TotalEvents++
		stats.EventCounts[entry.EventType]++
		stats.SourceCounts[entry.Source]++
		stats.DecisionCounts[entry.Decision]++

		if entry.DurationMs == nil {
			continue
		}
		d := *entry.DurationMs
		stats.TotalDurationMs += d
		stats.EventCountWithDuration++
		if d > stats.MaxDurationMs {
			stats.MaxDurationMs = d
		}
		if stats.MinDurationMs == 0 || d < stats.MinDurationMs {
			stats.MinDurationMs = d
		}
	}
	return stats, nil
}

// Stats aggregates a day's hook-log entries.
type Stats struct {
	TotalEvents            int64            `json:"total_events"`
	EventCounts            map[string]int64 `json:"event_counts"`
	SourceCounts           map[string]int64 `json:"source_counts"`
	DecisionCounts         map[string]int64 `json:"decision_counts"`
	TotalDurationMs        int64            `json:"total_duration_ms"`
	EventCountWithDuration int64            `json:"event_count_with_duration"`
	MinDurationMs          int64            `json:"min_duration_ms"`
	MaxDurationMs          int64            `json:"max_duration_ms"`
}

func NewStats() *Stats {
	return &Stats{
		EventCounts:    make(map[string]int64),
		SourceCounts:   make(map[string]int64),
		DecisionCounts: make(map[string]int64),
	}
}

// AverageDurationMs returns the mean duration over entries that recorded
// one, or 0 when none did.
func (s *Stats) AverageDurationMs() float64 {
	if s.EventCountWithDuration == 0 {
		return 0.0
	}
	return float64(s.TotalDurationMs) / float64(s.EventCountWithDuration)
}
