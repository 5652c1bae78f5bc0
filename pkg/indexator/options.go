package indexator

import (
	"errors"
	"log/slog"

	"github.com/Aman-CERP/amankeys/internal/filter"
	"github.com/Aman-CERP/amankeys/internal/morph"
	"github.com/Aman-CERP/amankeys/internal/resources"
	"github.com/Aman-CERP/amankeys/internal/tagger"
)

// ErrInvalidDefaultWeight is returned when the default weight is not a
// positive number.
var ErrInvalidDefaultWeight = errors.New("default weight must be positive")

// SanitizerConfig bounds what a valid term looks like.
type SanitizerConfig struct {
	// MinLength is the minimum number of characters.
	MinLength int `yaml:"min_length" json:"min_length"`
	// MaxNotAlphanumeric is the maximum number of characters outside
	// letters and digits (inclusive).
	MaxNotAlphanumeric int `yaml:"max_not_alphanumeric" json:"max_not_alphanumeric"`
	// MaxDigit is the exclusive upper bound on digit characters.
	MaxDigit int `yaml:"max_digit" json:"max_digit"`
}

// DefaultSanitizerConfig returns the default sanitizer bounds.
func DefaultSanitizerConfig() SanitizerConfig {
	return SanitizerConfig{
		MinLength:          4,
		MaxNotAlphanumeric: 2,
		MaxDigit:           2,
	}
}

// Option configures an Indexator.
type Option func(*Indexator)

// WithTagger sets the part-of-speech tagger.
func WithTagger(t tagger.Tagger) Option {
	return func(idx *Indexator) {
		idx.tagger = t
	}
}

// WithLemmatizer sets the lemmatizer. Use morph.NopLemmatizer to keep
// every term as written.
func WithLemmatizer(l morph.Lemmatizer) Option {
	return func(idx *Indexator) {
		idx.lemmatizer = l
	}
}

// WithStemmer sets the stemmer.
func WithStemmer(s morph.Stemmer) Option {
	return func(idx *Indexator) {
		idx.stemmer = s
	}
}

// WithStopwords sets the stop-word set checked against lemmas.
func WithStopwords(s resources.Stopwords) Option {
	return func(idx *Indexator) {
		idx.stopwords = s
	}
}

// WithDictionary sets the specificity weights.
func WithDictionary(d resources.Dictionary) Option {
	return func(idx *Indexator) {
		idx.dictionary = d
	}
}

// WithFilter sets the occurrence filter.
func WithFilter(f *filter.Filter) Option {
	return func(idx *Indexator) {
		idx.filter = f
	}
}

// WithSanitizer sets the sanitizer bounds.
func WithSanitizer(cfg SanitizerConfig) Option {
	return func(idx *Indexator) {
		idx.sanitizer = cfg
	}
}

// WithDefaultWeight sets the weight of terms absent from the dictionary.
func WithDefaultWeight(w float64) Option {
	return func(idx *Indexator) {
		idx.defaultWeight = w
	}
}

// WithLemmaCacheSize sets the size of the lemma cache used by the default
// lemmatizer. It has no effect with WithLemmatizer.
func WithLemmaCacheSize(n int) Option {
	return func(idx *Indexator) {
		idx.cacheSize = n
	}
}

// WithWorkers bounds the number of documents IndexAll processes at once.
func WithWorkers(n int) Option {
	return func(idx *Indexator) {
		idx.workers = n
	}
}

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(idx *Indexator) {
		idx.logger = l
	}
}
