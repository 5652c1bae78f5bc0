package indexator

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/Aman-CERP/amankeys/internal/extract"
	"github.com/Aman-CERP/amankeys/internal/filter"
	"github.com/Aman-CERP/amankeys/internal/morph"
	"github.com/Aman-CERP/amankeys/internal/resources"
	"github.com/Aman-CERP/amankeys/internal/tagger"
	"github.com/Aman-CERP/amankeys/internal/text"
)

// Options control one Index call.
type Options struct {
	// Sort orders keywords by descending specificity. Ties keep their
	// first-occurrence order.
	Sort bool `json:"sort" yaml:"sort"`
	// Truncate drops keywords whose specificity is below the average.
	Truncate bool `json:"truncate" yaml:"truncate"`
}

// Indexator runs the extraction pipeline.
type Indexator struct {
	tagger        tagger.Tagger
	lemmatizer    morph.Lemmatizer
	stemmer       morph.Stemmer
	stopwords     resources.Stopwords
	dictionary    resources.Dictionary
	filter        *filter.Filter
	extractor     *extract.Extractor
	sanitizer     SanitizerConfig
	defaultWeight float64
	cacheSize     int
	workers       int
	logger        *slog.Logger

	// invalid replaces rejected terms during sanitization.
	invalid Term
}

// New creates an Indexator. Unset collaborators default to the embedded
// English lexicon, a cached rule-based lemmatizer validated against that
// lexicon, the Snowball stemmer, the English stop words, an empty
// dictionary and the default filter.
//
// Stop words are on by default so common words like "this" or "which"
// never surface as keywords. Pass WithStopwords(resources.NewStopwords())
// for an empty set.
func New(opts ...Option) (*Indexator, error) {
	idx := &Indexator{
		sanitizer:     DefaultSanitizerConfig(),
		defaultWeight: resources.DefaultWeight,
		cacheSize:     morph.DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(idx)
	}

	if idx.tagger == nil {
		idx.tagger = tagger.Default()
	}
	if idx.lemmatizer == nil {
		idx.lemmatizer = morph.NewCachedLemmatizer(morph.NewMorphy(lexiconValidator(idx.tagger)), idx.cacheSize)
	}
	if idx.stemmer == nil {
		idx.stemmer = morph.SnowballStemmer{}
	}
	if idx.stopwords == nil {
		idx.stopwords = resources.EnglishStopwords()
	}
	if idx.dictionary == nil {
		idx.dictionary = resources.Dictionary{}
	}
	if idx.filter == nil {
		idx.filter = filter.Default()
	}
	if idx.workers <= 0 {
		idx.workers = runtime.GOMAXPROCS(0)
	}
	if idx.logger == nil {
		idx.logger = slog.Default()
	}
	if !(idx.defaultWeight > 0) || math.IsInf(idx.defaultWeight, 0) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidDefaultWeight, idx.defaultWeight)
	}
	if err := idx.dictionary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dictionary: %w", err)
	}

	idx.extractor = extract.New(idx.filter)
	idx.invalid = invalidMarker(idx.tagger)
	return idx, nil
}

// invalidMarker is the tagging of the separator, with no lemma or stem.
func invalidMarker(t tagger.Tagger) Term {
	tagged := t.Tag([]string{text.Separator})
	if len(tagged) != 1 {
		panic(fmt.Sprintf("indexator: tagger returned %d terms for 1 token", len(tagged)))
	}
	return Term{Term: tagged[0].Term, Tag: tagged[0].Tag, Class: tagged[0].Class}
}

// Filter returns the occurrence filter.
func (idx *Indexator) Filter() *filter.Filter {
	return idx.filter
}

// Index extracts keywords from text. Each stage that yields nothing stops
// the pipeline and returns the document as filled so far.
//
// Index panics if the tagger does not return exactly one term per token.
func (idx *Indexator) Index(input string, opts Options) *Document {
	start := time.Now()
	doc := newDocument()

	doc.Tokens = text.Tokenize(input)
	if len(doc.Tokens) == 0 {
		return doc
	}

	doc.Terms.Tagged = idx.tagger.Tag(doc.Tokens)
	if len(doc.Terms.Tagged) != len(doc.Tokens) {
		panic(fmt.Sprintf("indexator: tagger returned %d terms for %d tokens", len(doc.Terms.Tagged), len(doc.Tokens)))
	}

	doc.Terms.Lemmatized = idx.Lemmatize(doc.Terms.Tagged)
	doc.Terms.Sanitized = idx.Sanitize(doc.Terms.Lemmatized)

	th := idx.extractor.Threshold(len(doc.Terms.Sanitized))
	extraction := extract.Extract(doc.Terms.Sanitized, th)
	if extraction.Len() == 0 {
		idx.logDone(doc, th, start)
		return doc
	}

	idx.score(doc, extraction, opts)
	idx.logDone(doc, th, start)
	return doc
}

func (idx *Indexator) logDone(doc *Document, th filter.Threshold, start time.Time) {
	idx.logger.Debug("index complete",
		slog.Int("tokens", len(doc.Tokens)),
		slog.Int("min_occur", th.MinOccur),
		slog.Int("candidates", len(doc.Extraction.Keys)),
		slog.Int("keywords", len(doc.Keywords)),
		slog.Duration("duration", time.Since(start)))
}

// score fills statistics, extraction terms and keywords.
func (idx *Indexator) score(doc *Document, extraction extract.Result, opts Options) {
	stats := &doc.Statistics
	for _, key := range extraction.Keys {
		freq := extraction.Terms[key].Frequency
		stats.Frequencies.Max = max(stats.Frequencies.Max, freq)
		stats.Frequencies.Total += freq
	}

	total := float64(stats.Frequencies.Total)
	scored := make(map[string]Keyword, len(extraction.Keys))
	for _, key := range extraction.Keys {
		kw := candidateKeyword(key, extraction.Terms[key])
		kw.Probability = float64(kw.Frequency) / total
		kw.Specificity = kw.Probability / idx.dictionary.Weight(key, idx.defaultWeight)
		stats.Specificities.Max = max(stats.Specificities.Max, kw.Specificity)
		scored[key] = kw
	}

	for _, key := range extraction.Keys {
		kw := scored[key]
		kw.Specificity /= stats.Specificities.Max
		stats.Specificities.Avg += kw.Specificity
		scored[key] = kw
	}
	stats.Specificities.Avg /= float64(len(extraction.Keys))

	keywords := make([]Keyword, 0, len(extraction.Keys))
	for _, key := range extraction.Keys {
		kw := scored[key]
		if !opts.Truncate || kw.Specificity >= stats.Specificities.Avg {
			keywords = append(keywords, kw)
		}
	}
	if opts.Sort {
		sort.SliceStable(keywords, func(i, j int) bool {
			return keywords[i].Specificity > keywords[j].Specificity
		})
	}

	doc.Extraction.Terms = scored
	doc.Extraction.Keys = extraction.Keys
	doc.Keywords = keywords
}
