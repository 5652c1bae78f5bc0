// Package tagger assigns part-of-speech tags to tokens by lexicon lookup.
//
// Tags are Penn Treebank codes. Each tag is mapped once, at tagging time, to
// a closed Class that later stages switch on instead of matching tag strings.
package tagger

import (
	"strings"

	"github.com/Aman-CERP/amankeys/internal/text"
)

// UnknownTag is assigned to tokens missing from the lexicon.
const UnknownTag = "NND"

// Class is the coarse word category derived from a tag.
type Class int

const (
	// Other covers determiners, pronouns, prepositions, separators and
	// anything else that cannot be part of a keyword.
	Other Class = iota
	Noun
	Verb
	Adjective
	Adverb
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "other"
	}
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ClassOf maps a tag to its Class. Noun tags start with N, verb tags with V,
// adjective tags with J and adverb tags with RB.
func ClassOf(tag string) Class {
	switch {
	case tag == "":
		return Other
	case tag[0] == 'N':
		return Noun
	case tag[0] == 'V':
		return Verb
	case tag[0] == 'J':
		return Adjective
	case strings.HasPrefix(tag, "RB"):
		return Adverb
	default:
		return Other
	}
}

// Term is a token with its tag.
type Term struct {
	Term  string `json:"term" yaml:"term"`
	Tag   string `json:"tag" yaml:"tag"`
	Class Class  `json:"class" yaml:"class"`
}

// Phrasal reports whether the term can start or extend a keyphrase.
func (t Term) Phrasal() bool {
	return t.Class == Noun || t.Class == Adjective
}

// Lemmatized is a tagged term with its canonical form and stem.
type Lemmatized struct {
	Term  string `json:"term" yaml:"term"`
	Tag   string `json:"tag" yaml:"tag"`
	Class Class  `json:"class" yaml:"class"`
	Lemma string `json:"lemma" yaml:"lemma"`
	Stem  string `json:"stem" yaml:"stem"`
}

// Phrasal reports whether the term can start or extend a keyphrase.
func (l Lemmatized) Phrasal() bool {
	return l.Class == Noun || l.Class == Adjective
}

// Tagger tags a token sequence. Implementations must return exactly one
// Term per token, in order.
type Tagger interface {
	Tag(tokens []string) []Term
}

// LexiconTagger tags tokens from a word -> tag table. It is read-only after
// construction and safe for concurrent use.
type LexiconTagger struct {
	lexicon Lexicon
}

// New creates a tagger over lexicon. The map is copied.
func New(lexicon Lexicon) *LexiconTagger {
	lex := make(Lexicon, len(lexicon))
	for word, tag := range lexicon {
		lex[strings.ToLower(word)] = tag
	}
	return &LexiconTagger{lexicon: lex}
}

// Tag returns one Term per token. The separator is always tagged with
// itself so it never joins a phrase.
func (t *LexiconTagger) Tag(tokens []string) []Term {
	terms := make([]Term, len(tokens))
	for i, tok := range tokens {
		terms[i] = t.tagOne(tok)
	}
	return terms
}

func (t *LexiconTagger) tagOne(token string) Term {
	if text.IsSeparator(token) {
		return Term{Term: token, Tag: text.Separator, Class: Other}
	}
	tag, ok := t.lexicon[token]
	if !ok {
		tag = UnknownTag
	}
	return Term{Term: token, Tag: tag, Class: ClassOf(tag)}
}

// Lookup returns the lexicon tag of word.
func (t *LexiconTagger) Lookup(word string) (string, bool) {
	tag, ok := t.lexicon[word]
	return tag, ok
}

// Len returns the number of lexicon entries.
func (t *LexiconTagger) Len() int {
	return len(t.lexicon)
}
