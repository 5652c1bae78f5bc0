package resources

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
)

// DefaultWeight is the specificity weight of terms absent from a dictionary.
const DefaultWeight = 1e-5

// Dictionary maps a term (a lemma, or lemmas joined by a single space) to
// its domain weight. Higher weights make a term less specific.
type Dictionary map[string]float64

// Weight returns the weight of term, or def when the term is unknown or
// its weight is zero.
func (d Dictionary) Weight(term string, def float64) float64 {
	if w := d[term]; w != 0 {
		return w
	}
	return def
}

// Validate rejects weights that would break scoring: negative, NaN or
// infinite values. Zero is allowed and means the default weight.
func (d Dictionary) Validate() error {
	for term, w := range d {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("term %q has invalid weight %v (must be zero or a positive finite number)", term, w)
		}
	}
	return nil
}

// LoadDictionary reads a dictionary file. The format follows the extension:
// .json and .yaml/.yml hold a term -> weight mapping, .db/.sqlite/.sqlite3
// are SQLite databases (see LoadDictionarySQLite), anything else is read as
// tab-separated "term<TAB>weight" lines.
func LoadDictionary(ctx context.Context, path string) (Dictionary, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".db" || ext == ".sqlite" || ext == ".sqlite3" {
		return LoadDictionarySQLite(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, amerrors.FileError(path, err)
	}

	var dict Dictionary
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &dict)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &dict)
	default:
		dict, err = parseTSV(data)
	}
	if err == nil {
		err = dict.Validate()
	}
	if err != nil {
		return nil, amerrors.CorruptResource(path, err)
	}
	return normalizeKeys(dict), nil
}

// LoadDictionarySQLite reads the weights table of a SQLite database:
//
//	CREATE TABLE weights (term TEXT PRIMARY KEY, weight REAL NOT NULL)
func LoadDictionarySQLite(ctx context.Context, path string) (Dictionary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, amerrors.FileError(path, err)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, amerrors.CorruptResource(path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT term, weight FROM weights")
	if err != nil {
		return nil, amerrors.CorruptResource(path, fmt.Errorf("failed to query weights table: %w", err))
	}
	defer rows.Close()

	dict := make(Dictionary)
	for rows.Next() {
		var (
			term   string
			weight float64
		)
		if err := rows.Scan(&term, &weight); err != nil {
			return nil, amerrors.CorruptResource(path, err)
		}
		dict[term] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, amerrors.CorruptResource(path, err)
	}
	if err := dict.Validate(); err != nil {
		return nil, amerrors.CorruptResource(path, err)
	}
	return normalizeKeys(dict), nil
}

func parseTSV(data []byte) (Dictionary, error) {
	dict := make(Dictionary)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		term, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"term<TAB>weight\"", lineNo)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		dict[strings.TrimSpace(term)] = w
	}
	return dict, scanner.Err()
}

// normalizeKeys lowercases terms and collapses inner whitespace so
// multi-word entries match extracted composites.
func normalizeKeys(d Dictionary) Dictionary {
	out := make(Dictionary, len(d))
	for term, w := range d {
		out[strings.Join(strings.Fields(strings.ToLower(term)), " ")] = w
	}
	return out
}
