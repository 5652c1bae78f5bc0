// Package text splits free text into the word tokens consumed by the tagger.
package text

import (
	"regexp"
	"strings"
)

// Separator marks a position where punctuation stood instead of a word.
// It breaks phrases during extraction.
const Separator = "#"

// chunkRegex matches a whole chunk made of one alphanumeric core (ASCII
// letters, digits and Latin-1 letters À-ÿ) with optional punctuation on
// either side.
var chunkRegex = regexp.MustCompile(`^([^a-zA-Z0-9À-ÿ]*)([a-zA-Z0-9À-ÿ]+)([^a-zA-Z0-9À-ÿ]*)$`)

// Tokenize splits text on whitespace, lowercases each chunk and emits its
// word. Punctuation before or after the word becomes one Separator per
// side. Chunks that are not a single word between punctuation, such as
// "e-mail", "it's" or "...", emit nothing.
//
// Example: "Hello, world!" -> ["hello", "#", "world", "#"]
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return []string{}
	}

	tokens := make([]string, 0, len(fields)+len(fields)/2)
	for _, field := range fields {
		tokens = appendChunk(tokens, strings.ToLower(field))
	}
	return tokens
}

func appendChunk(tokens []string, chunk string) []string {
	m := chunkRegex.FindStringSubmatch(chunk)
	if m == nil {
		return tokens
	}
	if m[1] != "" {
		tokens = append(tokens, Separator)
	}
	tokens = append(tokens, m[2])
	if m[3] != "" {
		tokens = append(tokens, Separator)
	}
	return tokens
}

// IsSeparator reports whether token is the Separator.
func IsSeparator(token string) bool {
	return token == Separator
}

// Words returns tokens without separators.
func Words(tokens []string) []string {
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsSeparator(tok) {
			words = append(words, tok)
		}
	}
	return words
}
