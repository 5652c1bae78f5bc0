package morph

import (
	"slices"
	"strings"
)

// minStem is the shortest stem a detachment rule may leave behind.
const minStem = 2

type rule struct {
	suffix string
	ending string
}

// detachments are tried in order. Adverbs have none.
var detachments = map[Category][]rule{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// Morphy is a rule-based lemmatizer. Irregular forms come from an exception
// table; regular forms are produced by suffix detachment rules and checked
// against a Validator when one is set. Without a match, a spelling heuristic
// picks the most plausible detachment.
//
// Morphy is stateless and safe for concurrent use.
type Morphy struct {
	validator Validator
}

// NewMorphy creates a lemmatizer. validator may be nil.
func NewMorphy(validator Validator) *Morphy {
	return &Morphy{validator: validator}
}

// Lemmas implements Lemmatizer. Validated candidates come last, in rule
// order, after the unvalidated detachments and the heuristic guess.
func (m *Morphy) Lemmas(term string, cat Category) []string {
	if term == "" || cat == None {
		return nil
	}
	if base, ok := exceptions[cat][term]; ok {
		return []string{base}
	}
	if m.known(term, cat) {
		return []string{term}
	}

	var guesses, known []string
	for _, r := range detachments[cat] {
		if !strings.HasSuffix(term, r.suffix) || len(term)-len(r.suffix) < minStem {
			continue
		}
		candidate := term[:len(term)-len(r.suffix)] + r.ending
		if candidate == term || slices.Contains(guesses, candidate) || slices.Contains(known, candidate) {
			continue
		}
		if m.known(candidate, cat) {
			known = append(known, candidate)
		} else {
			guesses = append(guesses, candidate)
		}
	}

	if len(guesses) > 0 && len(known) == 0 {
		best := guess(term, cat)
		if best == "" {
			best = term
		}
		guesses = moveLast(guesses, best)
	}
	return append(guesses, known...)
}

func (m *Morphy) known(word string, cat Category) bool {
	return m.validator != nil && m.validator.Known(word, cat)
}

// guess applies spelling rules to choose one lemma when no candidate is
// validated. It returns "" when the term should stay as written.
func guess(term string, cat Category) string {
	switch cat {
	case Noun:
		return guessNoun(term)
	case Verb:
		return guessVerb(term)
	case Adjective:
		return guessAdjective(term)
	}
	return ""
}

func guessNoun(term string) string {
	switch {
	case len(term) <= 3,
		strings.HasSuffix(term, "ss"),
		strings.HasSuffix(term, "us"),
		strings.HasSuffix(term, "is"):
		return ""
	case strings.HasSuffix(term, "ies") && len(term) > 4:
		return term[:len(term)-3] + "y"
	case hasAnySuffix(term, "sses", "ches", "shes", "xes", "zes"):
		return term[:len(term)-2]
	case strings.HasSuffix(term, "s"):
		return term[:len(term)-1]
	}
	return ""
}

func guessVerb(term string) string {
	switch {
	case strings.HasSuffix(term, "ies") && len(term) > 4:
		return term[:len(term)-3] + "y"
	case strings.HasSuffix(term, "ing"):
		return restoreStem(term[:len(term)-3])
	case strings.HasSuffix(term, "ed"):
		return restoreStem(term[:len(term)-2])
	case hasAnySuffix(term, "sses", "ches", "shes", "xes", "zes", "oes"):
		return term[:len(term)-2]
	case strings.HasSuffix(term, "s") && !strings.HasSuffix(term, "ss"):
		return term[:len(term)-1]
	}
	return ""
}

func guessAdjective(term string) string {
	var stem string
	switch {
	case strings.HasSuffix(term, "est"):
		stem = term[:len(term)-3]
	case strings.HasSuffix(term, "er"):
		stem = term[:len(term)-2]
	default:
		return ""
	}
	if len(stem) < 3 {
		return ""
	}
	if strings.HasSuffix(stem, "i") {
		return stem[:len(stem)-1] + "y"
	}
	return undouble(stem)
}

// restoreStem undoes the spelling changes of -ed and -ing:
// "stopp" -> "stop", "mak" -> "make".
func restoreStem(stem string) string {
	if len(stem) < minStem {
		return ""
	}
	if u := undouble(stem); u != stem {
		return u
	}
	if len(stem) <= 3 && endsCVC(stem) {
		return stem + "e"
	}
	return stem
}

func undouble(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && !strings.ContainsRune("lsz", rune(stem[n-1])) {
		return stem[:n-1]
	}
	return stem
}

// endsCVC reports a consonant-vowel-consonant ending where the last
// consonant is not w, x or y.
func endsCVC(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	return !isVowel(s[n-3]) && isVowel(s[n-2]) && !isVowel(s[n-1]) && !strings.ContainsRune("wxy", rune(s[n-1]))
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func moveLast(list []string, s string) []string {
	out := make([]string, 0, len(list)+1)
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return append(out, s)
}
