// Package extract builds keyword candidates from a lemmatized term stream.
//
// A two-state machine scans the stream. Runs of nouns and adjectives form
// phrases: every member is counted as a single-word candidate, and runs of
// two or more also produce a composite candidate (lemmas joined by a
// space). Candidates are then kept or dropped by a filter threshold.
package extract

import (
	"strings"

	"github.com/Aman-CERP/amankeys/internal/filter"
	"github.com/Aman-CERP/amankeys/internal/tagger"
)

// Candidate is an extracted term with its counts.
type Candidate struct {
	// Frequency is the number of occurrences in the document.
	Frequency int `json:"frequency" yaml:"frequency"`
	// Strength is the number of words in the term.
	Strength int `json:"strength" yaml:"strength"`
}

// Result holds accepted candidates keyed by term. Keys lists the terms in
// first-occurrence order.
type Result struct {
	Keys  []string
	Terms map[string]Candidate
}

// Len returns the number of accepted candidates.
func (r Result) Len() int {
	return len(r.Keys)
}

type state int

const (
	stateSearch state = iota
	stateInPhrase
)

// counts accumulates frequencies and remembers first occurrences.
type counts struct {
	order []string
	freq  map[string]int
}

// addOccurrence records one occurrence of term.
func addOccurrence(c *counts, term string) {
	if _, seen := c.freq[term]; !seen {
		c.order = append(c.order, term)
	}
	c.freq[term]++
}

// Extract runs both phases over terms with threshold th.
func Extract(terms []tagger.Lemmatized, th filter.Threshold) Result {
	c := collect(terms)

	result := Result{
		Keys:  make([]string, 0, len(c.order)),
		Terms: make(map[string]Candidate, len(c.order)),
	}
	for _, term := range c.order {
		occur := c.freq[term]
		strength := len(strings.Split(term, " "))
		if !th.Accept(occur, strength) {
			continue
		}
		result.Keys = append(result.Keys, term)
		result.Terms[term] = Candidate{Frequency: occur, Strength: strength}
	}
	return result
}

// collect is the phrase-building state machine.
func collect(terms []tagger.Lemmatized) *counts {
	c := &counts{freq: make(map[string]int)}
	st := stateSearch
	var phrase []string

	flush := func() {
		if len(phrase) > 1 {
			addOccurrence(c, strings.Join(phrase, " "))
		}
		phrase = phrase[:0]
	}

	for _, term := range terms {
		phrasal := term.Phrasal()
		switch {
		case phrasal:
			st = stateInPhrase
			phrase = append(phrase, term.Lemma)
			addOccurrence(c, term.Lemma)
		case st == stateInPhrase:
			st = stateSearch
			flush()
		}
	}
	flush()
	return c
}

// Extractor resolves the threshold from the document length through its
// Filter before extracting.
type Extractor struct {
	filter *filter.Filter
}

// New creates an Extractor. A nil filter selects filter.Default().
func New(f *filter.Filter) *Extractor {
	if f == nil {
		f = filter.Default()
	}
	return &Extractor{filter: f}
}

// Threshold returns the threshold for a stream of n terms.
func (e *Extractor) Threshold(n int) filter.Threshold {
	return e.filter.Configure(n)
}

// Extract extracts candidates using the threshold for len(terms).
func (e *Extractor) Extract(terms []tagger.Lemmatized) Result {
	return Extract(terms, e.Threshold(len(terms)))
}
