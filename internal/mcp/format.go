package mcp

import (
	"fmt"
	"strings"
)

// FormatKeywords renders an extraction as markdown for tool text content.
func FormatKeywords(out *ExtractKeywordsOutput) string {
	if len(out.Keywords) == 0 {
		return fmt.Sprintf("No keywords found in %d tokens (min_occur %d).",
			out.Statistics.Tokens, out.Statistics.MinOccur)
	}

	var sb strings.Builder
	sb.WriteString("## Keywords\n\n")
	sb.WriteString(fmt.Sprintf("Found %d keyword", len(out.Keywords)))
	if len(out.Keywords) != 1 {
		sb.WriteString("s")
	}
	sb.WriteString(fmt.Sprintf(" in %d tokens (min_occur %d)\n\n", out.Statistics.Tokens, out.Statistics.MinOccur))

	sb.WriteString("| Term | Frequency | Strength | Specificity |\n")
	sb.WriteString("|------|-----------|----------|-------------|\n")
	for _, kw := range out.Keywords {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.4f |\n", kw.Term, kw.Frequency, kw.Strength, kw.Specificity))
	}
	return sb.String()
}

// FormatTokens renders a tokenize result as markdown.
func FormatTokens(out *TokenizeOutput) string {
	if len(out.Terms) == 0 {
		return "No tokens."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Tokens (%d)\n\n", len(out.Terms)))
	sb.WriteString("| Token | Tag | Lemma | Stem |\n")
	sb.WriteString("|-------|-----|-------|------|\n")
	for _, t := range out.Terms {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", escapeCell(t.Term), t.Tag, escapeCell(t.Lemma), escapeCell(t.Stem)))
	}
	return sb.String()
}

// escapeCell keeps separators and pipes from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// clampLimit returns defaultVal for non-positive limits and clamps the rest.
func clampLimit(limit, defaultVal, min, max int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
