package indexator

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// IndexAll indexes texts concurrently with at most the configured number
// of workers. Documents are returned in input order. Cancelling ctx stops
// documents that have not started yet and returns the context error.
func (idx *Indexator) IndexAll(ctx context.Context, texts []string, opts Options) ([]*Document, error) {
	docs := make([]*Document, len(texts))
	if len(texts) == 0 {
		return docs, nil
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	// Limit parallelism
	sem := make(chan struct{}, idx.workers)

	for i, input := range texts {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			docs[i] = idx.Index(input, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx.logger.Debug("batch index complete",
		slog.Int("documents", len(texts)),
		slog.Int("workers", idx.workers),
		slog.Duration("duration", time.Since(start)))
	return docs, nil
}
