package indexator

import (
	"github.com/Aman-CERP/amankeys/internal/extract"
	"github.com/Aman-CERP/amankeys/internal/tagger"
)

// Term is a tagged term with its lemma and stem.
type Term = tagger.Lemmatized

// Keyword is a scored candidate.
type Keyword struct {
	Term      string `json:"term" yaml:"term"`
	Frequency int    `json:"frequency" yaml:"frequency"`
	// Strength is the number of words in Term.
	Strength int `json:"strength" yaml:"strength"`
	// Specificity is normalized so the most specific term scores 1.
	Specificity float64 `json:"specificity" yaml:"specificity"`
	// Probability is Frequency over the total frequency of all candidates.
	Probability float64 `json:"probability" yaml:"probability"`
}

// Terms holds the term sequence after each stage. All three have one entry
// per token.
type Terms struct {
	Tagged     []tagger.Term `json:"tagged" yaml:"tagged"`
	Lemmatized []Term        `json:"lemmatized" yaml:"lemmatized"`
	Sanitized  []Term        `json:"sanitized" yaml:"sanitized"`
}

// Extraction holds every candidate that passed the filter, scored, with
// Keys in first-occurrence order.
type Extraction struct {
	Terms map[string]Keyword `json:"terms" yaml:"terms"`
	Keys  []string           `json:"keys" yaml:"keys"`
}

// Frequencies summarizes candidate frequencies.
type Frequencies struct {
	Max   int `json:"max" yaml:"max"`
	Total int `json:"total" yaml:"total"`
}

// Specificities summarizes normalized specificities.
type Specificities struct {
	Avg float64 `json:"avg" yaml:"avg"`
	Max float64 `json:"max" yaml:"max"`
}

// Statistics are computed over the extracted candidates of one document.
// Specificities.Max is the raw maximum used for normalization.
type Statistics struct {
	Frequencies   Frequencies   `json:"frequencies" yaml:"frequencies"`
	Specificities Specificities `json:"specificities" yaml:"specificities"`
}

// Document is the result of indexing one text.
type Document struct {
	Keywords   []Keyword  `json:"keywords" yaml:"keywords"`
	Extraction Extraction `json:"extraction" yaml:"extraction"`
	Terms      Terms      `json:"terms" yaml:"terms"`
	Tokens     []string   `json:"tokens" yaml:"tokens"`
	Statistics Statistics `json:"statistics" yaml:"statistics"`
}

func newDocument() *Document {
	return &Document{
		Keywords: []Keyword{},
		Extraction: Extraction{
			Terms: map[string]Keyword{},
			Keys:  []string{},
		},
		Terms: Terms{
			Tagged:     []tagger.Term{},
			Lemmatized: []Term{},
			Sanitized:  []Term{},
		},
		Tokens: []string{},
	}
}

// Keyword returns the scored candidate for term.
func (d *Document) Keyword(term string) (Keyword, bool) {
	kw, ok := d.Extraction.Terms[term]
	return kw, ok
}

// Top returns at most n keywords. n <= 0 returns all of them.
func (d *Document) Top(n int) []Keyword {
	if n <= 0 || n >= len(d.Keywords) {
		return d.Keywords
	}
	return d.Keywords[:n]
}

func candidateKeyword(term string, c extract.Candidate) Keyword {
	return Keyword{Term: term, Frequency: c.Frequency, Strength: c.Strength}
}
