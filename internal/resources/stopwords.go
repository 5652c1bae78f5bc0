package resources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"gopkg.in/yaml.v3"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// Stop-word set names accepted by StopwordSet.
const (
	StopwordSetEnglish = "english"
	StopwordSetNone    = "none"
)

// Stopwords is a set of words that never become keywords.
type Stopwords map[string]struct{}

// NewStopwords builds a set from words, lowercased.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// EnglishStopwords returns the English stop-word list bundled with bleve.
func EnglishStopwords() Stopwords {
	tokens := analysis.NewTokenMap()
	if err := tokens.LoadBytes(en.EnglishStopWords); err != nil {
		panic(fmt.Sprintf("resources: bundled stop words are malformed: %v", err))
	}
	return fromTokenMap(tokens)
}

// StopwordSet returns a built-in set by name. An empty name selects none.
func StopwordSet(name string) (Stopwords, error) {
	switch strings.ToLower(name) {
	case StopwordSetEnglish:
		return EnglishStopwords(), nil
	case "", StopwordSetNone:
		return Stopwords{}, nil
	default:
		return nil, amerrors.ValidationError(fmt.Sprintf("unknown stop-word set %q", name), nil).
			WithSuggestion("Use 'english' or 'none'")
	}
}

// LoadStopwords reads a stop-word file. .json and .yaml/.yml files hold a
// list of words; anything else is read one or more words per line, with
// '#' and '|' starting a comment.
func LoadStopwords(path string) (Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, amerrors.FileError(path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yaml", ".yml":
		var words []string
		if ext == ".json" {
			err = json.Unmarshal(data, &words)
		} else {
			err = yaml.Unmarshal(data, &words)
		}
		if err != nil {
			return nil, amerrors.CorruptResource(path, err)
		}
		return NewStopwords(words...), nil
	default:
		tokens := analysis.NewTokenMap()
		if err := tokens.LoadBytes(data); err != nil {
			return nil, amerrors.CorruptResource(path, err)
		}
		return fromTokenMap(tokens), nil
	}
}

func fromTokenMap(tokens analysis.TokenMap) Stopwords {
	s := make(Stopwords, len(tokens))
	for word := range tokens {
		s[strings.ToLower(word)] = struct{}{}
	}
	return s
}

// Merge returns a new set holding the words of all sets.
func Merge(sets ...Stopwords) Stopwords {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	merged := make(Stopwords, n)
	for _, s := range sets {
		for w := range s {
			merged[w] = struct{}{}
		}
	}
	return merged
}
