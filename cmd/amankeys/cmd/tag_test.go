package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCmd_JSON(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, "It uses tests.", "tag", "--format", "json")

	// Then
	require.NoError(t, err)
	var got struct {
		Tokens []string `json:"tokens"`
		Terms  struct {
			Lemmatized []struct {
				Term  string `json:"term"`
				Lemma string `json:"lemma"`
			} `json:"lemmatized"`
		} `json:"terms"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{"it", "uses", "tests", "#"}, got.Tokens)
	require.Len(t, got.Terms.Lemmatized, 4)
	assert.Equal(t, "test", got.Terms.Lemmatized[2].Lemma)
}

func TestTagCmd_Text(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, "It uses tests.", "tag", "--no-color")

	// Then
	require.NoError(t, err)
	assert.Contains(t, stdout, "TOKEN")
	assert.Contains(t, stdout, "LEMMA")
	assert.Contains(t, stdout, "tests")
}

func TestTagCmd_TooManyArgs(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	_, _, err := runCLI(t, "", "tag", "a.txt", "b.txt")

	// Then
	assert.Error(t, err)
}
