package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/amankeys/pkg/indexator"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. An empty value selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Result is one indexed input.
type Result struct {
	// Source names the input: a file path, or "-" for stdin.
	Source   string
	Document *indexator.Document
}

// RenderOptions controls what is rendered.
type RenderOptions struct {
	Format Format
	// Limit caps the number of keywords per document. 0 renders all.
	Limit int
	// Stages includes the per-stage term sequences.
	Stages  bool
	NoColor bool
}

// report is the structured form of a Result.
type report struct {
	Source     string               `json:"source,omitempty" yaml:"source,omitempty"`
	Keywords   []indexator.Keyword  `json:"keywords" yaml:"keywords"`
	Statistics indexator.Statistics `json:"statistics" yaml:"statistics"`
	Tokens     []string             `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Terms      *indexator.Terms     `json:"terms,omitempty" yaml:"terms,omitempty"`
}

func newReport(r Result, opts RenderOptions) report {
	rep := report{
		Source:     r.Source,
		Keywords:   r.Document.Top(opts.Limit),
		Statistics: r.Document.Statistics,
	}
	if opts.Stages {
		terms := r.Document.Terms
		rep.Tokens = r.Document.Tokens
		rep.Terms = &terms
	}
	return rep
}

// Render writes results in the requested format. A single result is
// encoded as an object, several as a list.
func Render(w io.Writer, results []Result, opts RenderOptions) error {
	switch opts.Format {
	case FormatJSON, FormatYAML:
		reports := make([]report, len(results))
		for i, r := range results {
			reports[i] = newReport(r, opts)
		}
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		return encode(w, opts.Format, v)
	case FormatText, "":
		styles := GetStyles(w, opts.NoColor)
		for i, r := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			if err := renderText(w, styles, r, opts); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func encode(w io.Writer, format Format, v any) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func renderText(w io.Writer, styles Styles, r Result, opts RenderOptions) error {
	if r.Source != "" && r.Source != "-" {
		if _, err := fmt.Fprintln(w, styles.Title.Render(r.Source)); err != nil {
			return err
		}
	}

	keywords := r.Document.Top(opts.Limit)
	if len(keywords) == 0 {
		_, err := fmt.Fprintln(w, "no keywords")
		return err
	}

	if _, err := fmt.Fprintln(w, KeywordTable(keywords, styles)); err != nil {
		return err
	}

	stats := r.Document.Statistics
	_, err := fmt.Fprintf(w, "%d tokens, %d candidates, %d keywords, avg specificity %.3f\n",
		len(r.Document.Tokens), len(r.Document.Extraction.Keys), len(r.Document.Keywords),
		stats.Specificities.Avg)
	if err != nil {
		return err
	}

	if opts.Stages {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, StageTable(r.Document, styles))
	}
	return err
}

// KeywordTable renders keywords as a bordered table. Composite terms are
// highlighted.
func KeywordTable(keywords []indexator.Keyword, styles Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("TERM", "FREQ", "STRENGTH", "SPECIFICITY", "PROBABILITY")

	for _, kw := range keywords {
		t.Row(kw.Term,
			strconv.Itoa(kw.Frequency),
			strconv.Itoa(kw.Strength),
			strconv.FormatFloat(kw.Specificity, 'f', 4, 64),
			strconv.FormatFloat(kw.Probability, 'f', 4, 64))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return styles.Header
		case col == 0 && keywords[row].Strength > 1:
			return styles.Phrase
		case col == 0:
			return styles.Term
		default:
			return styles.Number
		}
	})
	return t.String()
}

// StageTable renders the token, tag, lemma and stem of every term, marking
// the terms the sanitizer rejected.
func StageTable(doc *indexator.Document, styles Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("TOKEN", "TAG", "CLASS", "LEMMA", "STEM", "KEPT")

	sanitized := doc.Terms.Sanitized
	for i, term := range doc.Terms.Lemmatized {
		kept := "yes"
		if i < len(sanitized) && sanitized[i] != term {
			kept = "no"
		}
		t.Row(term.Term, term.Tag, term.Class.String(), term.Lemma, term.Stem, kept)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return styles.Header
		case col == 0:
			return styles.Term
		default:
			return styles.Dim
		}
	})
	return t.String()
}

// stages is the structured form of a stage dump.
type stages struct {
	Tokens []string        `json:"tokens" yaml:"tokens"`
	Terms  indexator.Terms `json:"terms" yaml:"terms"`
}

// RenderStages writes the per-stage terms of doc, as printed by
// `amankeys tag`.
func RenderStages(w io.Writer, doc *indexator.Document, format Format, noColor bool) error {
	switch format {
	case FormatJSON, FormatYAML:
		return encode(w, format, stages{Tokens: doc.Tokens, Terms: doc.Terms})
	case FormatText, "":
		_, err := fmt.Fprintln(w, StageTable(doc, GetStyles(w, noColor)))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
