package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/profile"
)

var profilesPath string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured profiles and their activation status",
	RunE:  runProfiles,
}

func init() {
	profilesCmd.Flags().StringVarP(&profilesPath, "path", "p", ".", "project path to evaluate against")
	rootCmd.AddCommand(profilesCmd)
}

var (
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(profilesPath)
	if err != nil {
		return err
	}

	if len(cfg.ActiveProfiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no profiles configured")
		return nil
	}

	active := make(map[string]bool)
	for _, p := range profile.Resolve(cfg, profilesPath, nil) {
		active[p.Metadata.Name] = true
	}

	out := cmd.OutOrStdout()
	for _, p := range cfg.ActiveProfiles {
		status := inactiveStyle.Render("inactive")
		if active[p.Metadata.Name] {
			status = activeStyle.Render("active  ")
		}
		desc := p.Metadata.Description
		if desc != "" {
			desc = "  " + desc
		}
		fmt.Fprintf(out, "%s  %s%s\n", status, p.Metadata.Name, desc)
	}

	if len(cfg.ActivePlugins) > 0 {
		fmt.Fprintln(out, "\nPlugins:")
		for _, p := range cfg.ActivePlugins {
			fmt.Fprintf(out, "  %s  events=%v\n", p.Metadata.Name, p.Trigger.Events)
		}
	}
	return nil
}
