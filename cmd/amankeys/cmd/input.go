package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/amankeys/internal/config"
	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// stdinSource names standard input in arguments and results.
const stdinSource = "-"

// loadConfig loads the configuration for the working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, amerrors.ConfigError("failed to load configuration", err).
			WithSuggestion("Run 'amankeys config show --source project' to inspect the project config")
	}
	return cfg, nil
}

// sources returns the inputs named by args, or stdin when there are none.
func sources(args []string) []string {
	if len(args) == 0 {
		return []string{stdinSource}
	}
	return args
}

// readInput reads one source, refusing more than limit bytes.
func readInput(cmd *cobra.Command, source string, limit int64) (string, error) {
	var r io.Reader
	if source == stdinSource {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(source)
		if err != nil {
			return "", amerrors.FileError(source, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", amerrors.FileError(source, err)
	}
	if int64(len(data)) > limit {
		return "", amerrors.New(amerrors.ErrCodeInputTooLarge,
			fmt.Sprintf("%s is larger than %d bytes", source, limit), nil).
			WithDetail("path", source).
			WithSuggestion("Split the document or raise performance.max_input_bytes")
	}
	return string(data), nil
}

// readInputs reads every source in order.
func readInputs(cmd *cobra.Command, srcs []string, limit int64) ([]string, error) {
	texts := make([]string, len(srcs))
	for i, src := range srcs {
		text, err := readInput(cmd, src, limit)
		if err != nil {
			return nil, err
		}
		texts[i] = text
	}
	return texts, nil
}
