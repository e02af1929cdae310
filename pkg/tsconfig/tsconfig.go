// Package tsconfig models tsconfig.json project configuration files.
//
// Parsing is tolerant: string enumerations accept values outside the known
// set, flexible settings are resolved by the kind of their JSON value, and
// keys that are not modeled are kept and written back unchanged.
package tsconfig

import (
	"bytes"
	"encoding/json"

	"github.com/mcncl/jsconf/pkg/shape"
)

// WatchOptions configures how `tsc --watch` observes the file system
type WatchOptions struct {
	WatchFile                 *string  `json:"watchFile,omitempty"`
	WatchDirectory            *string  `json:"watchDirectory,omitempty"`
	FallbackPolling           *string  `json:"fallbackPolling,omitempty"`
	SynchronousWatchDirectory *bool    `json:"synchronousWatchDirectory,omitempty"`
	ExcludeDirectories        []string `json:"excludeDirectories,omitempty"`
	ExcludeFiles              []string `json:"excludeFiles,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (w WatchOptions) MarshalJSON() ([]byte, error) {
	return shape.Encode(w)
}

// ProjectConfig is a tsconfig.json document. Fields are written in the order
// declared here, followed by Extras in the order they were read.
type ProjectConfig struct {
	// Extends names the parent configuration. It is data only; no merging
	// happens here.
	Extends         *Extends         `json:"extends,omitempty"`
	CompileOnSave   *bool            `json:"compileOnSave,omitempty"`
	CompilerOptions *CompilerOptions `json:"compilerOptions,omitempty"`
	WatchOptions    *WatchOptions    `json:"watchOptions,omitempty"`
	TypeAcquisition *TypeAcquisition `json:"typeAcquisition,omitempty"`
	References      *References      `json:"references,omitempty"`
	Files           []string         `json:"files,omitempty"`
	Include         []string         `json:"include,omitempty"`
	Exclude         []string         `json:"exclude,omitempty"`

	// Extras holds every top-level key not listed above.
	Extras shape.Extras `json:"-"`
}

// Parse reads a project configuration from JSON text
func Parse(data []byte) (*ProjectConfig, error) {
	raw, err := shape.ParseObject(data)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

// ParseString reads a project configuration from a JSON string
func ParseString(s string) (*ProjectConfig, error) {
	return Parse([]byte(s))
}

// FromValue reads a project configuration from an already decoded JSON value
func FromValue(v any) (*ProjectConfig, error) {
	raw, err := shape.FromValue(v)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func decode(raw json.RawMessage) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := shape.Decode(raw, &cfg, ""); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal writes the configuration as compact JSON
func (c *ProjectConfig) Marshal() ([]byte, error) {
	return shape.Encode(c)
}

// MarshalIndent writes the configuration as indented JSON
func (c *ProjectConfig) MarshalIndent(prefix, indent string) ([]byte, error) {
	data, err := c.Marshal()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToValue returns the configuration as generic JSON values
func (c *ProjectConfig) ToValue() (any, error) {
	data, err := c.Marshal()
	if err != nil {
		return nil, err
	}
	return shape.ToValue(data)
}

func (c ProjectConfig) MarshalJSON() ([]byte, error) {
	return shape.Encode(c)
}

func (c *ProjectConfig) UnmarshalJSON(data []byte) error {
	return shape.Decode(data, c, "")
}
