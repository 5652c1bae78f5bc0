package indexator

import (
	"unicode/utf8"

	"github.com/Aman-CERP/amankeys/internal/morph"
	"github.com/Aman-CERP/amankeys/internal/tagger"
)

// TranslateTag maps a tagged term to its lemmatizer category. Only the base
// adverb and adjective tags (RB, JJ) translate; comparatives and
// superlatives such as JJR or RBS keep their surface form. Any noun or verb
// tag translates. Everything else returns morph.None and is not lemmatized.
func TranslateTag(t tagger.Term) morph.Category {
	switch {
	case t.Tag == "RB":
		return morph.Adverb
	case t.Tag == "JJ":
		return morph.Adjective
	case t.Class == tagger.Noun:
		return morph.Noun
	case t.Class == tagger.Verb:
		return morph.Verb
	default:
		return morph.None
	}
}

// Lemmatize adds a lemma and a stem to every term. The lemma is the last
// candidate the lemmatizer proposes, or the term itself when its tag is not
// translatable or no candidate exists. The stem is always computed from the
// term.
func (idx *Indexator) Lemmatize(terms []tagger.Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		lemma := t.Term
		if cat := TranslateTag(t); cat != morph.None {
			if lemmas := idx.lemmatizer.Lemmas(t.Term, cat); len(lemmas) > 0 {
				lemma = lemmas[len(lemmas)-1]
			}
		}
		out[i] = Term{
			Term:  t.Term,
			Tag:   t.Tag,
			Class: t.Class,
			Lemma: lemma,
			Stem:  idx.stemmer.Stem(t.Term),
		}
	}
	return out
}

// Sanitize replaces every invalid term with the invalid marker, the tagging
// of the separator. A term is valid when it is long enough, has few enough
// non-alphanumeric and digit characters, and its lemma is not a stop word.
// The result has the same length as terms.
func (idx *Indexator) Sanitize(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		if idx.valid(t) {
			out[i] = t
		} else {
			out[i] = idx.invalid
		}
	}
	return out
}

func (idx *Indexator) valid(t Term) bool {
	cfg := idx.sanitizer
	if utf8.RuneCountInString(t.Term) < cfg.MinLength {
		return false
	}
	var notAlnum, digits int
	for _, r := range t.Term {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case !isAlphanumeric(r):
			notAlnum++
		}
	}
	return notAlnum <= cfg.MaxNotAlphanumeric &&
		digits < cfg.MaxDigit &&
		!idx.stopwords.Contains(t.Lemma)
}

// isAlphanumeric matches ASCII letters and digits and Latin-1 letters.
func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 0xC0 && r <= 0xFF)
}

// baseTags are the lexicon tags of uninflected forms.
var baseTags = map[string]bool{
	"NN":  true,
	"NNP": true,
	"VB":  true,
	"VBP": true,
	"JJ":  true,
	"RB":  true,
}

// lexiconValidator accepts lemma candidates listed in the tagger's lexicon
// with a base-form tag. Taggers without a lexicon validate nothing.
func lexiconValidator(t tagger.Tagger) morph.Validator {
	lex, ok := t.(interface {
		Lookup(word string) (string, bool)
	})
	if !ok {
		return nil
	}
	return morph.ValidatorFunc(func(word string, _ morph.Category) bool {
		tag, found := lex.Lookup(word)
		return found && baseTags[tag]
	})
}
