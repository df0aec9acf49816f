package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before considering a directory as not a repository
const maxDepth = 10

// Default .nt/config content
const DefaultConfig = `
[core]
extensions=["md", "markdown"]
parallel=4

[quiz]
mode="input"
hidden=50
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core ConfigCore
	Quiz ConfigQuiz
}
type ConfigCore struct {
	Extensions []string
	// Number of notes rendered concurrently
	Parallel int
}
type ConfigQuiz struct {
	Mode   string // input or read
	Hidden int    // percentage of hidden tokens
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range f.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

type Config struct {
	// Directory containing the .nt directory, empty when using defaults
	RootDirectory string

	// .nt/config content
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// SetParallel overrides the number of workers.
func (c *Config) SetParallel(parallel int) *Config {
	c.ConfigFile.Core.Parallel = parallel
	return c
}

// Policy returns the default reveal policy.
// Check must have been called before.
func (c *Config) Policy() quiz.RevealPolicy {
	mode, err := quiz.ParseMode(c.ConfigFile.Quiz.Mode)
	if err != nil {
		mode = quiz.ModeInput
	}
	return quiz.RevealPolicy{
		Mode:          mode,
		HiddenPercent: c.ConfigFile.Quiz.Hidden,
	}
}

func (c *Config) Check() error {
	if _, err := quiz.ParseMode(c.ConfigFile.Quiz.Mode); err != nil {
		return fmt.Errorf("invalid quiz configuration: %v", err)
	}
	if c.ConfigFile.Quiz.Hidden < 0 || c.ConfigFile.Quiz.Hidden > 100 {
		return fmt.Errorf("invalid quiz configuration: hidden must be between 0 and 100, got %d", c.ConfigFile.Quiz.Hidden)
	}
	if c.ConfigFile.Core.Parallel < 1 {
		return fmt.Errorf("invalid core configuration: parallel must be positive, got %d", c.ConfigFile.Core.Parallel)
	}
	return nil
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	//
	//   $ env NT_HOME=./examples ntq render notes.md
	if path, ok := os.LookupEnv("NT_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NT_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $NT_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .nt directory in the given directory
// or any parent directories. The default configuration is used when no .nt/config file is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath, err := findRootDirectory(path)
	if err != nil {
		return nil, err
	}

	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, fmt.Errorf("default configuration is broken: %v", err)
	}

	if rootPath != "" {
		ntConfigPath := filepath.Join(rootPath, ".nt", "config")
		_, err := os.Stat(ntConfigPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to check for .nt/config file: %v", err)
		}
		if err == nil {
			content, err := os.ReadFile(ntConfigPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read .nt/config file: %v", err)
			}
			configFile, err = parseConfigFileWithDefaults(string(content), *configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to parse .nt/config file: %v", err)
			}
		}
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

// findRootDirectory returns the closest directory containing a .nt directory, or "" if none exists.
func findRootDirectory(path string) (string, error) {
	rootPath := path
	for i := 0; i < maxDepth; i++ { // Safeguard to not go up too far
		ntPath := filepath.Join(rootPath, ".nt")
		_, err := os.Stat(ntPath)
		if err == nil {
			return rootPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("error while searching for configuration directory: %v", err)
		}
		parent := filepath.Dir(rootPath)
		if parent == rootPath {
			// Root directory detected
			return "", nil
		}
		rootPath = parent
	}
	return "", nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	return parseConfigFileWithDefaults(content, ConfigFile{})
}

// parseConfigFileWithDefaults decodes the content over the given defaults.
// Missing keys keep their default values.
func parseConfigFileWithDefaults(content string, defaults ConfigFile) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	result := defaults
	err := d.Decode(&result)
	return &result, err
}
