package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/jsconf/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsconf
type Config struct {
	// Kind forces a document kind for every input ("package" or "tsconfig")
	Kind      string          `yaml:"kind"`
	Output    OutputConfig    `yaml:"output"`
	Detection DetectionConfig `yaml:"detection"`
	Naming    NamingConfig    `yaml:"naming"`
	Dev       DevConfig       `yaml:"dev"`
}

// OutputConfig controls how documents are printed
type OutputConfig struct {
	Indent          string `yaml:"indent"`
	Prefix          string `yaml:"prefix"`
	Width           int    `yaml:"width"`
	SortKeys        bool   `yaml:"sort_keys"`
	Compact         bool   `yaml:"compact"`
	TrailingNewline bool   `yaml:"trailing_newline"`
}

// DetectionConfig maps file names to document kinds
type DetectionConfig struct {
	Manifest      []string `yaml:"manifest"`
	ProjectConfig []string `yaml:"tsconfig"`

	// compiled regexes (not serialized)
	manifest      []*regexp.Regexp
	projectConfig []*regexp.Regexp
}

// NamingConfig controls how query paths given on the command line are
// mapped onto wire keys
type NamingConfig struct {
	CamelCasePaths bool              `yaml:"camel_case_paths"`
	FieldMappings  map[string]string `yaml:"field_mappings"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent:          "  ",
			Width:           80,
			SortKeys:        false,
			Compact:         false,
			TrailingNewline: true,
		},
		Detection: DetectionConfig{
			Manifest:      []string{`(^|/)package\.json$`},
			ProjectConfig: []string{`(^|/)[jt]sconfig(\.[^/]*)?\.json$`},
		},
		Naming: NamingConfig{
			CamelCasePaths: true,
			FieldMappings: map[string]string{
				"emit_bom":           "emitBOM",
				"ts_build_info_file": "tsBuildInfoFile",
				"base_url":           "baseUrl",
			},
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := models.ParseKind(cfg.Kind); err != nil {
		return nil, fmt.Errorf("invalid kind: %w", err)
	}

	if err := cfg.compilePatterns(); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsconf.yml", ".jsconf.yaml", "jsconf.yml", "jsconf.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// compilePatterns compiles all regex patterns in the config
func (c *Config) compilePatterns() error {
	compile := func(patterns []string) ([]*regexp.Regexp, error) {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			regex, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid detection pattern '%s': %w", pattern, err)
			}
			compiled = append(compiled, regex)
		}
		return compiled, nil
	}

	var err error
	if c.Detection.manifest, err = compile(c.Detection.Manifest); err != nil {
		return err
	}
	if c.Detection.projectConfig, err = compile(c.Detection.ProjectConfig); err != nil {
		return err
	}
	return nil
}

// DetectKind returns the document kind for a file path. The configured kind
// wins; otherwise the file name is matched against the detection patterns.
// KindUnknown means the caller should look at the content.
func (c *Config) DetectKind(path string) models.DocumentKind {
	if kind, err := models.ParseKind(c.Kind); err == nil && kind != models.KindUnknown {
		return kind
	}
	if c.Detection.manifest == nil && c.Detection.projectConfig == nil {
		// Fallback for configs built in code
		if err := c.compilePatterns(); err != nil {
			return models.KindUnknown
		}
	}

	slashed := filepath.ToSlash(path)
	for _, regex := range c.Detection.manifest {
		if regex.MatchString(slashed) {
			return models.KindManifest
		}
	}
	for _, regex := range c.Detection.projectConfig {
		if regex.MatchString(slashed) {
			return models.KindProjectConfig
		}
	}
	return models.KindUnknown
}

var snakeSegment = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)+$`)

// FieldPath maps a dotted query path onto wire keys of a document of the
// given kind. A segment is renamed through GetFieldName only when the result
// is a field the model declares, so map keys such as dependency or script
// names are never touched. Escaped dots ("\.") do not split segments.
func (c *Config) FieldPath(path string, kind models.DocumentKind) string {
	return strings.Join(kind.WirePath(splitPath(path), c.GetFieldName), ".")
}

// GetFieldName returns the wire key for one path segment, applying naming rules
func (c *Config) GetFieldName(segment string) string {
	if mapped, exists := c.Naming.FieldMappings[segment]; exists {
		return mapped
	}

	// Package names may contain dashes, so only pure snake_case is converted
	if c.Naming.CamelCasePaths && snakeSegment.MatchString(segment) {
		return strcase.ToLowerCamel(segment)
	}

	return segment
}

func splitPath(path string) []string {
	var segments []string
	var current strings.Builder
	escaped := false
	for _, r := range path {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			current.WriteRune(r)
			escaped = true
		case r == '.':
			segments = append(segments, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(segments, current.String())
}

// LoadConfigWithCLI loads config with CLI argument precedence
func LoadConfigWithCLI(configPath, cliKind string, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	} else if err := cfg.compilePatterns(); err != nil {
		return nil, err
	}

	if cliKind != "" {
		if _, err := models.ParseKind(cliKind); err != nil {
			return nil, err
		}
		cfg.Kind = cliKind
	}
	// A debug flag can only switch debugging on
	if cliDebug {
		cfg.Dev.Debug = true
	}

	return cfg, nil
}
