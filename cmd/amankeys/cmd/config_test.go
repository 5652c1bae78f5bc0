package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/amankeys/configs"
	"github.com/Aman-CERP/amankeys/internal/config"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	// Given
	cmd := NewRootCmd()

	// When
	configCmd, _, err := cmd.Find([]string{"config"})
	require.NoError(t, err)

	// Then
	names := make(map[string]bool)
	for _, sc := range configCmd.Commands() {
		names[sc.Name()] = true
	}
	assert.True(t, names["init"])
	assert.True(t, names["show"])
	assert.True(t, names["path"])
}

func TestConfigPath(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, "", "config", "path")

	// Then
	require.NoError(t, err)
	assert.Equal(t, config.GetUserConfigPath(), strings.TrimSpace(stdout))
}

func TestConfigInit_User(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	stdout, _, err := runCLI(t, "", "config", "init")

	// Then
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created configuration")
	data, err := os.ReadFile(config.GetUserConfigPath())
	require.NoError(t, err)
	assert.Equal(t, configs.UserConfigTemplate, string(data))
}

func TestConfigInit_Project(t *testing.T) {
	// Given
	dir := isolateCLI(t)

	// When
	_, _, err := runCLI(t, "", "config", "init", "--project")

	// Then
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, config.ProjectConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, configs.ProjectConfigTemplate, string(data))
}

func TestConfigInit_ExistingWithoutForce(t *testing.T) {
	// Given: an edited project config
	dir := isolateCLI(t)
	path := filepath.Join(dir, config.ProjectConfigYAML)
	writeFile(t, path, "version: 1\n")

	// When
	stdout, _, err := runCLI(t, "", "config", "init", "--project")

	// Then: the file is untouched
	require.NoError(t, err)
	assert.Contains(t, stdout, "already exists")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestConfigInit_ForceKeepsBackup(t *testing.T) {
	// Given
	dir := isolateCLI(t)
	path := filepath.Join(dir, config.ProjectConfigYAML)
	writeFile(t, path, "version: 1\n")

	// When
	_, _, err := runCLI(t, "", "config", "init", "--project", "--force")

	// Then
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configs.ProjectConfigTemplate, string(data))

	backups, err := config.ListBackups(path)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	old, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(old))
}

func TestConfigShow_MergedJSON(t *testing.T) {
	// Given: a project override and an env override
	dir := isolateCLI(t)
	writeFile(t, filepath.Join(dir, config.ProjectConfigYAML), "filter:\n  min_occur: 5\n")
	t.Setenv("AMANKEYS_SORT", "true")

	// When
	stdout, _, err := runCLI(t, "", "config", "show", "--json")

	// Then
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, 5, cfg.Filter.MinOccur)
	assert.True(t, cfg.Scoring.Sort)
}

func TestConfigShow_Sources(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	defaults, _, err := runCLI(t, "", "config", "show", "--source", "defaults")
	require.NoError(t, err)
	user, _, err2 := runCLI(t, "", "config", "show", "--source", "user")
	require.NoError(t, err2)
	project, _, err3 := runCLI(t, "", "config", "show", "--source", "project")
	require.NoError(t, err3)

	// Then
	assert.Contains(t, defaults, "defaults (hardcoded)")
	assert.Contains(t, defaults, "min_occur: 7")
	assert.Contains(t, user, "No user configuration file found")
	assert.Contains(t, project, "No project configuration file found")
}

func TestConfigShow_InvalidSource(t *testing.T) {
	// Given
	isolateCLI(t)

	// When
	_, _, err := runCLI(t, "", "config", "show", "--source", "nope")

	// Then
	assert.Error(t, err)
}
