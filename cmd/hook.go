package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/project-lint/project-lint/internal/config"
	"github.com/project-lint/project-lint/internal/engine"
	"github.com/project-lint/project-lint/internal/event"
	"github.com/project-lint/project-lint/internal/hooklog"
	"github.com/project-lint/project-lint/internal/log"
	"github.com/project-lint/project-lint/internal/mapper"
	"github.com/project-lint/project-lint/internal/profile"
)

var (
	hookSource string
	hookPath   string
	hookLogDir string
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Evaluate one agent hook event from stdin",
	Long: `Read a hook payload from stdin, evaluate it against the configured
rules and active profiles, and write the source-specific response to
stdout. Exits with status 2 when the event is denied; any parse failure
is treated as "allow" so a broken payload never blocks the agent.`,
	RunE: runHook,
}

func init() {
	hookCmd.Flags().StringVar(&hookSource, "source", "windsurf", "hook source (windsurf, claude, kiro, generic)")
	hookCmd.Flags().StringVarP(&hookPath, "path", "p", ".", "project root for profile resolution")
	hookCmd.Flags().StringVar(&hookLogDir, "log-dir", "", "hook log directory (default: user data dir)")
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	invocationID := uuid.New().String()
	log.Debug("hook invocation %s from source %s", invocationID, hookSource)

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		log.Debug("empty hook input, skipping")
		return nil
	}

	m := mapper.Select(hookSource)

	ev, err := m.MapEvent(raw)
	if err != nil {
		// A hook that crashes on malformed input would block every
		// agent action, so parse failures degrade to allow.
		log.Error("failed to parse hook event: %v", err)
		return nil
	}
	log.Info("processing event: %s", ev.Type)

	cfg, err := config.Load(hookPath)
	if err != nil {
		return err
	}
	cfg.ActiveProfiles = profile.Resolve(cfg, hookPath, ev)

	start := time.Now()
	result := engine.New(cfg).EvaluateEvent(ev)
	durationMs := time.Since(start).Milliseconds()

	output, err := m.FormatResponse(result)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	logHookEvent(ev, result, durationMs)

	// Exit code 2 is the blocking convention agent hook frameworks
	// understand; the typed decision exists only inside this process.
	if result.Decision == event.Deny {
		os.Exit(2)
	}
	return nil
}

// logHookEvent persists the evaluated event. Logging failures are
// warnings only; auditing must never change the hook's verdict.
func logHookEvent(ev *event.Event, result event.HookResult, durationMs int64) {
	logger, err := hooklog.New(hookLogDir)
	if err != nil {
		log.Warn("hook logging disabled: %v", err)
		return
	}
	if err := logger.LogEvent(ev, result.Decision, result.Message, durationMs); err != nil {
		log.Warn("failed to log hook event: %v", err)
	}
}
