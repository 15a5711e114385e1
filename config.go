package skparse

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "skparse.yaml"

// Config represents the skparse configuration
type Config struct {
	InputDir    string            `yaml:"input_dir" toml:"input_dir"`
	Extensions  []string          `yaml:"extensions" toml:"extensions"`
	Language    string            `yaml:"language" toml:"language"`
	Parser      ParserConfig      `yaml:"parser" toml:"parser"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics" toml:"diagnostics"`
	Format      FormatConfig      `yaml:"format" toml:"format"`
	Markdown    MarkdownConfig    `yaml:"markdown" toml:"markdown"`
	Watch       WatchConfig       `yaml:"watch" toml:"watch"`
}

// ParserConfig represents parser settings
type ParserConfig struct {
	// Debug logs every parsed tree at debug level.
	Debug bool `yaml:"debug" toml:"debug"`
	// DisabledAddons are unloaded from the registries before any parse.
	DisabledAddons []string `yaml:"disabled_addons" toml:"disabled_addons"`
}

// DiagnosticsConfig represents reporting settings
type DiagnosticsConfig struct {
	// FailOn is the lowest severity that makes a check fail: warning, error, fatal or never.
	FailOn string `yaml:"fail_on" toml:"fail_on"`
	// Disabled lists warning codes hidden from reports.
	Disabled []string `yaml:"disabled" toml:"disabled"`
}

// FormatConfig represents formatter settings
type FormatConfig struct {
	IndentStyle string `yaml:"indent_style" toml:"indent_style"`
	IndentWidth int    `yaml:"indent_width" toml:"indent_width"`
}

// MarkdownConfig represents Markdown extraction settings
type MarkdownConfig struct {
	// Languages are the fenced code block info strings treated as scripts.
	Languages []string `yaml:"languages" toml:"languages"`
}

// WatchConfig represents watch mode settings
type WatchConfig struct {
	Debounce string `yaml:"debounce" toml:"debounce"`
}

// LoadConfig loads configuration from the specified file. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := parseConfig(data, filepath.Ext(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	expandConfigEnvVars(config)

	return config, nil
}

// parseConfig decodes TOML for ".toml" files and YAML otherwise. Unknown
// fields are rejected in both formats.
func parseConfig(data []byte, ext string) (*Config, error) {
	var config Config

	if strings.EqualFold(ext, ".toml") {
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&config); err != nil {
			return nil, err
		}

		return &config, nil
	}

	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if _, err := language.Parse(config.Language); err != nil {
		return fmt.Errorf("%w: invalid language '%s': %w", ErrConfigValidation, config.Language, err)
	}

	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension '%s' must start with a dot", ErrConfigValidation, ext)
		}
	}

	validFailOn := []string{"warning", "error", "fatal", "never"}
	if !slices.Contains(validFailOn, config.Diagnostics.FailOn) {
		return fmt.Errorf("%w: diagnostics.fail_on '%s' is invalid: must be one of warning, error, fatal, never", ErrConfigValidation, config.Diagnostics.FailOn)
	}

	if config.Format.IndentStyle != "spaces" && config.Format.IndentStyle != "tabs" {
		return fmt.Errorf("%w: format.indent_style '%s' is invalid: must be spaces or tabs", ErrConfigValidation, config.Format.IndentStyle)
	}

	if config.Format.IndentWidth < 1 || config.Format.IndentWidth > 16 {
		return fmt.Errorf("%w: format.indent_width must be between 1 and 16, got %d", ErrConfigValidation, config.Format.IndentWidth)
	}

	d, err := time.ParseDuration(config.Watch.Debounce)
	if err != nil || d < 0 {
		return fmt.Errorf("%w: watch.debounce '%s' is not a non-negative duration", ErrConfigValidation, config.Watch.Debounce)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		InputDir:   "./scripts",
		Extensions: []string{".sk"},
		Language:   "en",
		Diagnostics: DiagnosticsConfig{
			FailOn: "error",
		},
		Format: FormatConfig{
			IndentStyle: "spaces",
			IndentWidth: 4,
		},
		Markdown: MarkdownConfig{
			Languages: []string{"skript", "sk"},
		},
		Watch: WatchConfig{
			Debounce: "300ms",
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.InputDir == "" {
		config.InputDir = defaults.InputDir
	}

	if len(config.Extensions) == 0 {
		config.Extensions = defaults.Extensions
	}

	if config.Language == "" {
		config.Language = defaults.Language
	}

	if config.Diagnostics.FailOn == "" {
		config.Diagnostics.FailOn = defaults.Diagnostics.FailOn
	}

	if config.Format.IndentStyle == "" {
		config.Format.IndentStyle = defaults.Format.IndentStyle
	}

	if config.Format.IndentWidth == 0 {
		config.Format.IndentWidth = defaults.Format.IndentWidth
	}

	if len(config.Markdown.Languages) == 0 {
		config.Markdown.Languages = defaults.Markdown.Languages
	}

	if config.Watch.Debounce == "" {
		config.Watch.Debounce = defaults.Watch.Debounce
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path fields
func expandConfigEnvVars(config *Config) {
	config.InputDir = expandEnvVars(config.InputDir)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LanguageTag returns the display language. Invalid values fall back to English.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}

	return tag
}

// FailOnSeverity returns the severity that fails a check; ok is false for "never".
func (c *Config) FailOnSeverity() (severity cmn.Severity, ok bool) {
	if c.Diagnostics.FailOn == "never" {
		return cmn.WARNING, false
	}

	return cmn.ParseSeverity(c.Diagnostics.FailOn)
}

// DebounceDuration returns the parsed watch debounce delay.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 300 * time.Millisecond
	}

	return d
}

// IsDisabled reports whether diagnostics with the code are hidden.
func (c *Config) IsDisabled(code string) bool {
	return slices.Contains(c.Diagnostics.Disabled, code)
}

// HasScriptExtension reports whether path is a script file.
func (c *Config) HasScriptExtension(path string) bool {
	return slices.ContainsFunc(c.Extensions, func(ext string) bool {
		return strings.EqualFold(filepath.Ext(path), ext)
	})
}
