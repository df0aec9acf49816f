package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUpRepository(t *testing.T, config string) string {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".nt"), 0755))
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".nt", "config"), []byte(config), 0644))
	}
	return dir
}

func TestReadConfigFromDirectory(t *testing.T) {

	t.Run("Defaults", func(t *testing.T) {
		dir := setUpRepository(t, "")
		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, config.RootDirectory)
		assert.Equal(t, []string{"md", "markdown"}, config.ConfigFile.Core.Extensions)
		assert.Equal(t, 4, config.ConfigFile.Core.Parallel)
		assert.Equal(t, quiz.DefaultPolicy, config.Policy())
		assert.NoError(t, config.Check())
	})

	t.Run("Overrides", func(t *testing.T) {
		dir := setUpRepository(t, `
[quiz]
mode="read"
hidden=80
`)
		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		assert.Equal(t, quiz.RevealPolicy{Mode: quiz.ModeRead, HiddenPercent: 80}, config.Policy())
		// Missing keys keep their default values
		assert.Equal(t, 4, config.ConfigFile.Core.Parallel)
	})

	t.Run("Subdirectory", func(t *testing.T) {
		dir := setUpRepository(t, "[core]\nparallel=2\n")
		subdir := filepath.Join(dir, "notes", "geography")
		require.NoError(t, os.MkdirAll(subdir, 0755))
		config, err := ReadConfigFromDirectory(subdir)
		require.NoError(t, err)
		assert.Equal(t, dir, config.RootDirectory)
		assert.Equal(t, 2, config.ConfigFile.Core.Parallel)
	})

	t.Run("Unknown field", func(t *testing.T) {
		dir := setUpRepository(t, "[quiz]\nshuffle=true\n")
		_, err := ReadConfigFromDirectory(dir)
		assert.ErrorContains(t, err, "failed to parse .nt/config file")
	})
}

func TestConfigCheck(t *testing.T) {
	var tests = []struct {
		name     string
		config   string
		expected string
	}{
		{"Invalid mode", "[quiz]\nmode=\"write\"", `invalid quiz configuration: unknown mode "write"`},
		{"Invalid percentage", "[quiz]\nhidden=101", "invalid quiz configuration: hidden must be between 0 and 100, got 101"},
		{"Invalid parallel", "[core]\nparallel=0", "invalid core configuration: parallel must be positive, got 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ReadConfigFromDirectory(setUpRepository(t, tt.config))
			require.NoError(t, err)
			assert.EqualError(t, config.Check(), tt.expected)
		})
	}

	t.Run("SetParallel", func(t *testing.T) {
		config, err := ReadConfigFromDirectory(setUpRepository(t, "[core]\nparallel=0"))
		require.NoError(t, err)
		assert.NoError(t, config.SetParallel(8).Check())
	})
}

func TestSupportExtension(t *testing.T) {
	configFile, err := parseConfigFile(DefaultConfig)
	require.NoError(t, err)
	assert.True(t, configFile.SupportExtension("notes/capitals.md"))
	assert.True(t, configFile.SupportExtension("notes/capitals.MARKDOWN"))
	assert.False(t, configFile.SupportExtension("notes/capitals.txt"))
	assert.False(t, configFile.SupportExtension("notes/README"))
}
