package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/project-lint/project-lint/internal/log"
)

var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "project-lint",
	Short: "Project hygiene linter and agent hook gate",
	Long: `project-lint keeps a project tree clean: it lints for misplaced files,
forbidden branch usage, hardcoded secrets and insecure calls, and it can
gate AI coding assistant actions by evaluating hook events against
declarative rules.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.LevelDebug)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
