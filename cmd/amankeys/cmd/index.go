package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/amankeys/internal/config"
	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
	"github.com/Aman-CERP/amankeys/internal/output"
	"github.com/Aman-CERP/amankeys/internal/watcher"
	"github.com/Aman-CERP/amankeys/pkg/indexator"
)

// indexFlags holds the index command flags.
type indexFlags struct {
	sort     bool
	truncate bool
	limit    int
	format   string
	stages   bool
	watch    bool
	out      string
	noColor  bool
}

func newIndexCmd() *cobra.Command {
	var flags indexFlags

	cmd := &cobra.Command{
		Use:   "index [file...]",
		Short: "Extract keywords from files or stdin",
		Long: `Extract keywords and key phrases from each input.

With no file, or with "-", the text is read from stdin. Files are indexed
concurrently; results are printed in argument order.

The occurrence threshold adapts to the document length: short texts keep
every candidate, long texts keep only recurring ones. Phrases of two or
more words are always kept.`,
		Example: `  # Top 10 keywords, most specific first
  amankeys index --sort --limit 10 report.txt

  # JSON with the per-stage terms
  amankeys index --format json --debug-stages notes.md

  # Re-extract whenever the files change, writing results to a file
  amankeys index --watch --out keywords.json --format json a.txt b.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runIndex(ctx, cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.sort, "sort", false, "Order keywords by specificity (default from config)")
	cmd.Flags().BoolVar(&flags.truncate, "truncate", false, "Drop keywords below the average specificity (default from config)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Maximum keywords per document (0 = all)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&flags.stages, "debug-stages", false, "Include tokens, tags, lemmas and stems")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Re-extract when input files change")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write results to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// indexRun is one configured invocation of the index command.
type indexRun struct {
	cmd     *cobra.Command
	cfg     *config.Config
	idx     *indexator.Indexator
	opts    indexator.Options
	render  output.RenderOptions
	sources []string
	out     string
}

func runIndex(ctx context.Context, cmd *cobra.Command, args []string, flags indexFlags) error {
	format, err := output.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	if flags.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", flags.limit)
	}

	srcs := sources(args)
	if flags.watch {
		for _, src := range srcs {
			if src == stdinSource {
				return errors.New("--watch needs file arguments, not stdin")
			}
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	idx, err := cfg.BuildIndexator(ctx, slog.Default())
	if err != nil {
		return err
	}

	opts := cfg.IndexOptions()
	if cmd.Flags().Changed("sort") {
		opts.Sort = flags.sort
	}
	if cmd.Flags().Changed("truncate") {
		opts.Truncate = flags.truncate
	}

	run := &indexRun{
		cmd:  cmd,
		cfg:  cfg,
		idx:  idx,
		opts: opts,
		render: output.RenderOptions{
			Format:  format,
			Limit:   flags.limit,
			Stages:  flags.stages,
			NoColor: flags.noColor || flags.out != "" || !output.ColorEnabled(cmd.OutOrStdout()),
		},
		sources: srcs,
		out:     flags.out,
	}

	if err := run.once(ctx); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}
	return run.watch(ctx)
}

// once reads, indexes and renders every source.
func (r *indexRun) once(ctx context.Context) error {
	texts, err := readInputs(r.cmd, r.sources, r.cfg.Performance.MaxInputBytes)
	if err != nil {
		return err
	}

	start := time.Now()
	docs, err := r.idx.IndexAll(ctx, texts, r.opts)
	if err != nil {
		return amerrors.New(amerrors.ErrCodeIndexFailed, "indexing was interrupted", err)
	}

	results := make([]output.Result, len(docs))
	for i, doc := range docs {
		results[i] = output.Result{Source: r.sources[i], Document: doc}
	}
	slog.Debug("index command complete",
		slog.Int("documents", len(docs)),
		slog.Duration("duration", time.Since(start)))

	return r.write(ctx, results)
}

// write renders results to stdout or to the --out file. A results file
// locked by another run is retried briefly before giving up.
func (r *indexRun) write(ctx context.Context, results []output.Result) error {
	if r.out == "" {
		return output.Render(r.cmd.OutOrStdout(), results, r.render)
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, results, r.render); err != nil {
		return err
	}
	err := amerrors.Retry(ctx, amerrors.DefaultBackoff(), func() error {
		return output.WriteFileLocked(r.out, buf.Bytes())
	})
	if err != nil {
		return err
	}
	output.New(r.cmd.ErrOrStderr()).Successf("Wrote %d result(s) to %s", len(results), r.out)
	return nil
}

// watch re-runs the extraction whenever an input file changes, until ctx
// is cancelled.
func (r *indexRun) watch(ctx context.Context) error {
	window, err := time.ParseDuration(r.cfg.Performance.WatchDebounce)
	if err != nil {
		return fmt.Errorf("invalid performance.watch_debounce %q: %w", r.cfg.Performance.WatchDebounce, err)
	}

	w, err := watcher.New(r.sources, watcher.WithDebounce(window), watcher.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	status := output.New(r.cmd.ErrOrStderr())
	status.Statusf("👀", "Watching %d file(s), Ctrl+C to stop", w.Files())

	events, errs := w.Events(), w.Errors()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			slog.Warn("watcher error", slog.String("error", err.Error()))
		case batch, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.onChange(ctx, batch, status); err != nil {
				return err
			}
		}
	}
}

// onChange re-indexes after a batch of changes. A deleted input is
// reported and skipped until it reappears. Only fatal errors end the watch.
func (r *indexRun) onChange(ctx context.Context, batch []watcher.FileEvent, status *output.Writer) error {
	for _, event := range batch {
		slog.Debug("input changed",
			slog.String("path", event.Path),
			slog.String("op", event.Operation.String()))
		if event.Operation == watcher.OpDelete {
			status.Warningf("%s was removed, waiting for it to return", event.Path)
			return nil
		}
	}

	err := r.once(ctx)
	switch {
	case err == nil:
		return nil
	case amerrors.IsFatal(err):
		return err
	default:
		slog.Debug("re-index failed", slog.Any("error", err))
		status.Errorf("re-index failed: %v", err)
		return nil
	}
}
