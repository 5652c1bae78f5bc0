// Package morph provides the morphological collaborators of the extraction
// pipeline: lemmatizers that map an inflected word to candidate base forms
// and stemmers that reduce a word to its stem.
package morph

// Category is the part of speech a lemmatizer works with.
type Category string

const (
	// None means the word has no lemmatizable category.
	None      Category = ""
	Noun      Category = "noun"
	Verb      Category = "verb"
	Adjective Category = "adj"
	Adverb    Category = "adv"
)

// Lemmatizer returns candidate lemmas for term in category cat, ordered from
// least to most likely. An empty result means the term is its own lemma.
// Callers must not modify the returned slice.
type Lemmatizer interface {
	Lemmas(term string, cat Category) []string
}

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(term string) string
}

// Validator reports whether word is a known base form in category cat.
type Validator interface {
	Known(word string, cat Category) bool
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(word string, cat Category) bool

// Known calls f(word, cat).
func (f ValidatorFunc) Known(word string, cat Category) bool {
	return f(word, cat)
}

// NopLemmatizer never proposes a lemma, so every term stays as written.
type NopLemmatizer struct{}

// Lemmas returns nil.
func (NopLemmatizer) Lemmas(string, Category) []string {
	return nil
}
