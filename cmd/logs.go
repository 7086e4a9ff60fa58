package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/project-lint/project-lint/internal/hooklog"
	"github.com/project-lint/project-lint/internal/logview"
)

var (
	logsLimit       int
	logsStats       bool
	logsDir         string
	logsInteractive bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent hook events and statistics",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "l", 50, "number of recent entries to show")
	logsCmd.Flags().BoolVar(&logsStats, "stats", false, "show statistics only")
	logsCmd.Flags().StringVarP(&logsDir, "dir", "d", "", "log directory (default: user data dir)")
	logsCmd.Flags().BoolVarP(&logsInteractive, "interactive", "i", false, "browse entries interactively")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	var logger *hooklog.Logger
	if logsDir == "" {
		logger = hooklog.Default()
		if logger == nil {
			return fmt.Errorf("cannot resolve log directory")
		}
	} else {
		var err error
		logger, err = hooklog.New(logsDir)
		if err != nil {
			return err
		}
	}

	if logsStats {
		return showStats(cmd, logger)
	}

	entries, err := logger.Recent(logsLimit)
	if err != nil {
		return err
	}

	if logsInteractive {
		return logview.Run(entries)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No hook events logged today.")
		return nil
	}

	denyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	for _, entry := range entries {
		decision := entry.Decision
		switch decision {
		case "deny":
			decision = denyStyle.Render(decision)
		case "warn", "ask":
			decision = warnStyle.Render(decision)
		}
		fmt.Fprintf(out, "%s  %-20s %-10s %s", entry.Timestamp.Format("15:04:05"), entry.EventType, entry.Source, decision)
		if entry.ToolName != "" {
			fmt.Fprintf(out, "  tool=%s", entry.ToolName)
		}
		if entry.FilePath != "" {
			fmt.Fprintf(out, "  file=%s", entry.FilePath)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func showStats(cmd *cobra.Command, logger *hooklog.Logger) error {
	stats, err := logger.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	title := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out, title.Render("📊 Hook Statistics"))
	fmt.Fprintf(out, "Total events: %d\n", stats.TotalEvents)
	if stats.EventCountWithDuration > 0 {
		fmt.Fprintf(out, "Average duration: %.2fms\n", stats.AverageDurationMs())
		fmt.Fprintf(out, "Min duration: %dms\n", stats.MinDurationMs)
		fmt.Fprintf(out, "Max duration: %dms\n", stats.MaxDurationMs)
	}

	printCounts(out, "Events by type", stats.EventCounts)
	printCounts(out, "Events by source", stats.SourceCounts)
	printCounts(out, "Events by decision", stats.DecisionCounts)
	return nil
}

func printCounts(out io.Writer, heading string, counts map[string]int64) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "\n%s:\n", heading)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s: %d\n", k, counts[k])
	}
}
