// Package indexator extracts ranked keywords and keyphrases from free text.
//
// It needs no training corpus. A document goes through a fixed pipeline:
//
//	text -> Tokenize -> Tag -> Lemmatize -> Sanitize -> Extract -> Score
//
// Tokenize splits the text into lowercase words and separators. Tag assigns
// part-of-speech tags from a lexicon. Lemmatize adds a canonical form and a
// stem to every term. Sanitize replaces terms that are too short, too
// punctuated, too numeric or stop words with an invalid marker, keeping
// positions aligned. Extract builds single-word and multi-word candidates
// from runs of nouns and adjectives and drops rare ones, with a minimum
// occurrence that grows with document length. Score computes each term's
// probability and its specificity against a weight dictionary.
//
// # Usage
//
//	idx, err := indexator.New()
//	if err != nil {
//	    return err
//	}
//	doc := idx.Index(text, indexator.Options{Sort: true})
//	for _, kw := range doc.Keywords {
//	    fmt.Println(kw.Term, kw.Specificity)
//	}
//
// # Thread Safety
//
// An Indexator is immutable after New and safe for concurrent use. The
// occurrence threshold is resolved per document.
package indexator
