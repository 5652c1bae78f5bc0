package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
	"github.com/Aman-CERP/amankeys/internal/filter"
	"github.com/Aman-CERP/amankeys/internal/morph"
	"github.com/Aman-CERP/amankeys/internal/resources"
	"github.com/Aman-CERP/amankeys/internal/tagger"
	"github.com/Aman-CERP/amankeys/pkg/indexator"
)

// ResolvePath makes a relative resource path relative to the directory the
// configuration was loaded for.
func (c *Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}
	return filepath.Join(c.baseDir, path)
}

// IndexOptions returns the scoring defaults as index options.
func (c *Config) IndexOptions() indexator.Options {
	return indexator.Options{Sort: c.Scoring.Sort, Truncate: c.Scoring.Truncate}
}

// BuildIndexator loads the configured resources and assembles an Indexator.
func (c *Config) BuildIndexator(ctx context.Context, logger *slog.Logger) (*indexator.Indexator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := filter.New(c.Filter)
	if err != nil {
		return nil, amerrors.ConfigError("invalid filter settings", err)
	}

	tg := tagger.Default()
	if c.Resources.Lexicon != "" {
		lex, err := tagger.LoadLexicon(c.ResolvePath(c.Resources.Lexicon))
		if err != nil {
			return nil, err
		}
		tg = tagger.New(lex)
	}

	stopwords, err := resources.StopwordSet(c.Resources.StopwordSet)
	if err != nil {
		return nil, err
	}
	if c.Resources.Stopwords != "" {
		extra, err := resources.LoadStopwords(c.ResolvePath(c.Resources.Stopwords))
		if err != nil {
			return nil, err
		}
		stopwords = resources.Merge(stopwords, extra)
	}

	dict := resources.Dictionary{}
	if c.Resources.Dictionary != "" {
		dict, err = resources.LoadDictionary(ctx, c.ResolvePath(c.Resources.Dictionary))
		if err != nil {
			return nil, err
		}
	}

	stemmer, err := morph.NewStemmer(c.Morph.Stemmer)
	if err != nil {
		return nil, amerrors.ConfigError("invalid stemmer", err)
	}

	opts := []indexator.Option{
		indexator.WithFilter(f),
		indexator.WithTagger(tg),
		indexator.WithStopwords(stopwords),
		indexator.WithDictionary(dict),
		indexator.WithStemmer(stemmer),
		indexator.WithSanitizer(c.Sanitizer),
		indexator.WithDefaultWeight(c.Scoring.DefaultWeight),
		indexator.WithLemmaCacheSize(c.Morph.CacheSize),
		indexator.WithWorkers(c.Performance.Workers),
		indexator.WithLogger(logger),
	}
	if strings.ToLower(c.Morph.Lemmatizer) == LemmatizerNone {
		opts = append(opts, indexator.WithLemmatizer(morph.NopLemmatizer{}))
	}

	idx, err := indexator.New(opts...)
	if err != nil {
		return nil, amerrors.ConfigError("failed to build indexator", err)
	}

	logger.Debug("indexator ready",
		slog.Int("stopwords", len(stopwords)),
		slog.Int("dictionary", len(dict)),
		slog.String("stemmer", c.Morph.Stemmer),
		slog.String("lemmatizer", c.Morph.Lemmatizer))
	return idx, nil
}
