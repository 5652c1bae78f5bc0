package mcp

import (
	"github.com/Aman-CERP/amankeys/pkg/indexator"
)

// Tool names.
const (
	ToolExtractKeywords = "extract_keywords"
	ToolTokenize        = "tokenize"
)

// Keyword limits for extract_keywords.
const (
	defaultKeywordLimit = 20
	maxKeywordLimit     = 500
)

// ExtractKeywordsInput defines the input schema for the extract_keywords tool.
type ExtractKeywordsInput struct {
	Text     string `json:"text" jsonschema:"the document text to extract keywords from"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of keywords, default 20"`
	Sort     *bool  `json:"sort,omitempty" jsonschema:"order keywords by specificity, default from config"`
	Truncate *bool  `json:"truncate,omitempty" jsonschema:"drop keywords below the average specificity, default from config"`
	Stages   bool   `json:"stages,omitempty" jsonschema:"include the tagged, lemmatized and sanitized terms"`
}

// ExtractKeywordsOutput defines the output schema for the extract_keywords tool.
type ExtractKeywordsOutput struct {
	Keywords   []indexator.Keyword `json:"keywords" jsonschema:"scored keywords"`
	Statistics StatisticsOutput    `json:"statistics" jsonschema:"document statistics"`
	Terms      []TermOutput        `json:"terms,omitempty" jsonschema:"per-token stages, present when stages is set"`
}

// StatisticsOutput summarizes one extraction.
type StatisticsOutput struct {
	Tokens             int     `json:"tokens" jsonschema:"number of tokens including separators"`
	Candidates         int     `json:"candidates" jsonschema:"candidates that passed the frequency filter"`
	MinOccur           int     `json:"min_occur" jsonschema:"occurrence threshold chosen for the document length"`
	MaxFrequency       int     `json:"max_frequency"`
	TotalFrequency     int     `json:"total_frequency"`
	AverageSpecificity float64 `json:"average_specificity"`
}

// TermOutput is one token after tagging, lemmatization and sanitizing.
type TermOutput struct {
	Term  string `json:"term"`
	Tag   string `json:"tag"`
	Class string `json:"class"`
	Lemma string `json:"lemma"`
	Stem  string `json:"stem"`
	Kept  bool   `json:"kept" jsonschema:"false when the sanitizer rejected the term"`
}

// TokenizeInput defines the input schema for the tokenize tool.
type TokenizeInput struct {
	Text string `json:"text" jsonschema:"the text to tokenize and tag"`
}

// TokenizeOutput defines the output schema for the tokenize tool.
type TokenizeOutput struct {
	Tokens []string     `json:"tokens" jsonschema:"tokens with '#' marking punctuation"`
	Terms  []TermOutput `json:"terms" jsonschema:"tagged and lemmatized tokens"`
}

// toTermOutputs pairs lemmatized and sanitized terms.
func toTermOutputs(terms indexator.Terms) []TermOutput {
	out := make([]TermOutput, len(terms.Lemmatized))
	for i, t := range terms.Lemmatized {
		out[i] = TermOutput{
			Term:  t.Term,
			Tag:   t.Tag,
			Class: t.Class.String(),
			Lemma: t.Lemma,
			Stem:  t.Stem,
			Kept:  i < len(terms.Sanitized) && terms.Sanitized[i] == t,
		}
	}
	return out
}
