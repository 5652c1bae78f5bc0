package morph

import (
	"fmt"
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
)

// Stemmer names accepted by NewStemmer.
const (
	StemmerSnowball = "snowball"
	StemmerPorter   = "porter"
)

// SnowballStemmer applies the Snowball English (Porter2) algorithm.
type SnowballStemmer struct{}

// Stem implements Stemmer.
func (SnowballStemmer) Stem(term string) string {
	env := snowballstem.NewEnv(term)
	english.Stem(env)
	return env.Current()
}

// PorterStemmer applies the original Porter algorithm.
type PorterStemmer struct{}

// Stem implements Stemmer.
func (PorterStemmer) Stem(term string) string {
	return porterstemmer.StemString(term)
}

// NewStemmer returns the stemmer registered under name.
// An empty name selects Snowball.
func NewStemmer(name string) (Stemmer, error) {
	switch strings.ToLower(name) {
	case "", StemmerSnowball:
		return SnowballStemmer{}, nil
	case StemmerPorter:
		return PorterStemmer{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q (expected %s or %s)", name, StemmerSnowball, StemmerPorter)
	}
}
