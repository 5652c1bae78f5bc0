// Package cmd provides the CLI commands for amankeys.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
	"github.com/Aman-CERP/amankeys/internal/logging"
	"github.com/Aman-CERP/amankeys/internal/profiling"
	"github.com/Aman-CERP/amankeys/pkg/version"
)

// Debug logging and profiling flags
var (
	debugMode      bool
	loggingCleanup func()
	profilePaths   profiling.Paths
	profileSession *profiling.Session
)

// NewRootCmd creates the root command for amankeys CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amankeys",
		Short: "Keyword and key phrase extraction",
		Long: `amankeys extracts keywords and multi-word key phrases from text.

Text is tokenized, tagged, lemmatized and filtered; noun phrases are
collected and scored by frequency and specificity.

  amankeys index notes.txt        # keywords of a file
  cat notes.txt | amankeys index  # keywords of stdin
  amankeys serve                  # MCP server for AI clients`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("amankeys version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.amankeys/logs/")
	cmd.PersistentFlags().StringVar(&profilePaths.CPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&profilePaths.Mem, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&profilePaths.Trace, "profile-trace", "", "Write execution trace to file")

	cmd.PersistentPreRunE = startProfilingAndLogging
	cmd.PersistentPostRunE = stopProfilingAndLogging

	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newTagCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startProfilingAndLogging starts the requested profiles and installs the
// default logger: warnings on stderr, or the debug log file with --debug.
func startProfilingAndLogging(cmd *cobra.Command, _ []string) error {
	if profilePaths.Enabled() {
		session, err := profiling.Start(profilePaths)
		if err != nil {
			return err
		}
		profileSession = session
	}

	if !debugMode {
		slog.SetDefault(logging.Console(cmd.ErrOrStderr()))
		return nil
	}

	cfg := logging.DebugConfig()
	logger, cleanup, err := logging.Setup(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", cfg.FilePath),
		slog.String("version", version.Get().Version))
	return nil
}

// stopProfilingAndLogging writes the profiles, then flushes and closes
// the debug log.
func stopProfilingAndLogging(_ *cobra.Command, _ []string) error {
	var profileErr error
	if profileSession != nil {
		profileErr = profileSession.Stop()
		profileSession = nil
		slog.Debug("profiling stopped", slog.String("memory", profiling.MemSummary()))
	}

	if loggingCleanup != nil {
		slog.Info("Debug logging stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	if profileErr != nil {
		return fmt.Errorf("failed to write profiles: %w", profileErr)
	}
	return nil
}

// Execute runs the root command and prints errors in CLI form.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprint(os.Stderr, amerrors.FormatForCLI(err))
		// The command may have failed before PersistentPostRunE
		_ = stopProfilingAndLogging(cmd, nil)
	}
	return err
}
