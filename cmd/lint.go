package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/lint"
)

var (
	lintPath string
	lintFix  bool
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run linting checks on a project tree",
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&lintPath, "path", "p", ".", "project root to lint")
	lintCmd.Flags().BoolVar(&lintFix, "fix", false, "apply automatic fixes where available")
	rootCmd.AddCommand(lintCmd)
}

var (
	lintErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	lintWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lintInfoStyle  = lipgloss.NewStyle().Faint(true)
	lintOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(lintPath)
	if err != nil {
		return err
	}

	runner, err := lint.NewRunner(cfg, lintPath, lintFix)
	if err != nil {
		return err
	}
	report, err := runner.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(report.ActiveProfiles) > 0 {
		fmt.Fprintf(out, "Active profiles: %v\n\n", report.ActiveProfiles)
	}

	for _, issue := range report.Issues {
		var style lipgloss.Style
		switch issue.Severity {
		case config.SeverityError:
			style = lintErrorStyle
		case config.SeverityWarning:
			style = lintWarnStyle
		default:
			style = lintInfoStyle
		}

		location := issue.File
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
		}
		if location != "" {
			fmt.Fprintf(out, "%s %s %s\n", style.Render(issue.Severity.Icon()), location, issue.Message)
		} else {
			fmt.Fprintf(out, "%s %s\n", style.Render(issue.Severity.Icon()), issue.Message)
		}
	}

	fmt.Fprintf(out, "\n%d files scanned, %d issues", report.FilesScanned, len(report.Issues))
	if report.FixesApplied > 0 {
		fmt.Fprintf(out, ", %d fixes applied", report.FixesApplied)
	}
	fmt.Fprintln(out)

	if report.HasErrors() {
		os.Exit(1)
	}
	if len(report.Issues) == 0 {
		fmt.Fprintln(out, lintOKStyle.Render("✓ no issues found"))
	}
	return nil
}
