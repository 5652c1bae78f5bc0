package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/amankeys/internal/config"
)

func TestExtractKeywords_SampleDocument(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)

	// When
	res, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{"text": sampleText})

	// Then
	require.NoError(t, err)
	out, ok := res.(*ExtractKeywordsOutput)
	require.True(t, ok)
	assert.Equal(t, 20, out.Statistics.Tokens)
	assert.Equal(t, 6, out.Statistics.Candidates)
	assert.Equal(t, 1, out.Statistics.MinOccur)
	assert.Len(t, out.Keywords, 6)
	assert.Nil(t, out.Terms)

	var found bool
	for _, kw := range out.Keywords {
		if kw.Term == "sample test" {
			found = true
			assert.Equal(t, 2, kw.Frequency)
			assert.Equal(t, 2, kw.Strength)
		}
	}
	assert.True(t, found)
}

func TestExtractKeywords_LimitSortAndStages(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)

	// When
	res, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{
		"text":   sampleText,
		"limit":  float64(2),
		"sort":   true,
		"stages": true,
	})

	// Then
	require.NoError(t, err)
	out := res.(*ExtractKeywordsOutput)
	require.Len(t, out.Keywords, 2)
	assert.GreaterOrEqual(t, out.Keywords[0].Specificity, out.Keywords[1].Specificity)
	require.Len(t, out.Terms, 20)
	assert.Equal(t, "this", out.Terms[0].Term)
	assert.False(t, out.Terms[0].Kept, "stop word is rejected")
	assert.Equal(t, "sample", out.Terms[3].Term)
	assert.True(t, out.Terms[3].Kept)
}

func TestExtractKeywords_Truncate(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)

	// When
	res, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{
		"text":     sampleText,
		"truncate": true,
	})

	// Then: every kept keyword is at least average
	require.NoError(t, err)
	out := res.(*ExtractKeywordsOutput)
	for _, kw := range out.Keywords {
		assert.GreaterOrEqual(t, kw.Specificity, out.Statistics.AverageSpecificity)
	}
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	srv := newTestServer(t, nil)

	_, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{})

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
}

func TestExtractKeywords_InputTooLarge(t *testing.T) {
	// Given: a 16 byte limit
	cfg := config.NewConfig()
	cfg.Performance.MaxInputBytes = 16
	srv := newTestServer(t, cfg)

	// When
	_, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{"text": sampleText})

	// Then
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInputTooLarge, mcpErr.Code)
	assert.Contains(t, mcpErr.Message, "max_input_bytes")
}

func TestExtractKeywords_CanceledContext(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When
	_, err := srv.CallTool(ctx, ToolExtractKeywords, map[string]any{"text": sampleText})

	// Then
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeTimeout, mcpErr.Code)
}

func TestTokenize(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)

	// When
	res, err := srv.CallTool(context.Background(), ToolTokenize, map[string]any{"text": "It uses tests."})

	// Then
	require.NoError(t, err)
	out := res.(*TokenizeOutput)
	assert.Equal(t, []string{"it", "uses", "tests", "#"}, out.Tokens)
	require.Len(t, out.Terms, 4)
	assert.Equal(t, "#", out.Terms[3].Tag)
	assert.Equal(t, "test", out.Terms[2].Lemma)
}

func TestFormatKeywords(t *testing.T) {
	// Given
	srv := newTestServer(t, nil)
	res, err := srv.CallTool(context.Background(), ToolExtractKeywords, map[string]any{"text": sampleText})
	require.NoError(t, err)

	// When
	md := FormatKeywords(res.(*ExtractKeywordsOutput))

	// Then
	assert.True(t, strings.HasPrefix(md, "## Keywords"))
	assert.Contains(t, md, "Found 6 keywords in 20 tokens")
	assert.Contains(t, md, "| sample test | 2 | 2 |")
}

func TestFormatKeywords_Empty(t *testing.T) {
	md := FormatKeywords(&ExtractKeywordsOutput{Statistics: StatisticsOutput{Tokens: 3, MinOccur: 1}})

	assert.Equal(t, "No keywords found in 3 tokens (min_occur 1).", md)
}

func TestFormatTokens_EscapesPipes(t *testing.T) {
	md := FormatTokens(&TokenizeOutput{Terms: []TermOutput{{Term: "a|b", Tag: "NN", Lemma: "a|b", Stem: "a|b"}}})

	assert.Contains(t, md, `a\|b`)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, clampLimit(0, 20, 1, 500))
	assert.Equal(t, 20, clampLimit(-5, 20, 1, 500))
	assert.Equal(t, 7, clampLimit(7, 20, 1, 500))
	assert.Equal(t, 500, clampLimit(9000, 20, 1, 500))
}
