package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/amankeys/internal/output"
)

func newTagCmd() *cobra.Command {
	var format string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "tag [file|-]",
		Short: "Show tokens, tags, lemmas and stems of a text",
		Long: `Run the text through the tokenizer, tagger and lemmatizer and print every
stage, without scoring. Useful when tuning a lexicon or stop word list.

The KEPT column shows whether the sanitizer let the term through to phrase
extraction.`,
		Example: `  echo "The cats were running." | amankeys tag
  amankeys tag --format json notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTag(cmd.Context(), cmd, args, format, noColor)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runTag(ctx context.Context, cmd *cobra.Command, args []string, formatFlag string, noColor bool) error {
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	idx, err := cfg.BuildIndexator(ctx, slog.Default())
	if err != nil {
		return err
	}

	source := sources(args)[0]
	text, err := readInput(cmd, source, cfg.Performance.MaxInputBytes)
	if err != nil {
		return err
	}

	doc := idx.Index(text, cfg.IndexOptions())
	if err := output.RenderStages(cmd.OutOrStdout(), doc, format, noColor || !output.New(cmd.OutOrStdout()).UseColor()); err != nil {
		return fmt.Errorf("failed to render stages: %w", err)
	}
	return nil
}
