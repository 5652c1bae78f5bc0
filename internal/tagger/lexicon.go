package tagger

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// Lexicon maps a lowercase word to its most frequent tag.
type Lexicon map[string]string

//go:embed data/lexicon.txt
var defaultLexiconData []byte

var defaultLexicon = sync.OnceValue(func() Lexicon {
	lex, err := ParseLexicon(bytes.NewReader(defaultLexiconData))
	if err != nil {
		panic(fmt.Sprintf("tagger: embedded lexicon is malformed: %v", err))
	}
	return lex
})

// DefaultLexicon returns a copy of the embedded English lexicon.
func DefaultLexicon() Lexicon {
	return maps.Clone(defaultLexicon())
}

// Default returns a tagger over the embedded English lexicon.
func Default() *LexiconTagger {
	return &LexiconTagger{lexicon: defaultLexicon()}
}

// ParseLexicon reads "word TAG" lines. Blank lines and lines starting with
// "//" are skipped. Extra fields after the tag are ignored and the first
// entry for a word wins.
func ParseLexicon(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"word TAG\", got %q", lineNo, line)
		}
		word := strings.ToLower(fields[0])
		if _, seen := lex[word]; !seen {
			lex[word] = fields[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// LoadLexicon reads a lexicon file. The format follows the extension:
// .json and .yaml/.yml hold a word -> tag mapping, anything else is parsed
// as "word TAG" lines.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, amerrors.FileError(path, err)
	}

	var lex Lexicon
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &lex)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &lex)
	default:
		lex, err = ParseLexicon(bytes.NewReader(data))
	}
	if err != nil {
		return nil, amerrors.CorruptResource(path, err)
	}
	if len(lex) == 0 {
		return nil, amerrors.CorruptResource(path, fmt.Errorf("lexicon is empty"))
	}
	return lex, nil
}
