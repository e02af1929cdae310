// Package manifest models package.json package descriptors.
//
// A Manifest keeps every key it was read with. Fields that are modeled are
// typed, flexible fields (author, repository, man, bugs, bin) accept each of
// their documented shapes, and everything else is held in Extras and written
// back in its original position relative to the other unknown keys.
package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/mcncl/jsconf/pkg/shape"
)

// Manifest is a package.json document. Fields are written in the order
// declared here, followed by Extras in the order they were read. Optional
// fields that were absent on input are never written.
type Manifest struct {
	Name         *string              `json:"name,omitempty"`
	Version      *string              `json:"version,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Keywords     []string             `json:"keywords,omitempty"`
	Homepage     *string              `json:"homepage,omitempty"`
	Bugs         *BugsReference       `json:"bugs,omitempty"`
	License      *string              `json:"license,omitempty"`
	Author       *PersonReference     `json:"author,omitempty"`
	Contributors []PersonReference    `json:"contributors,omitempty"`
	Files        []string             `json:"files,omitempty"`
	Main         *string              `json:"main,omitempty"`
	Browser      *string              `json:"browser,omitempty"`
	Bin          *BinReference        `json:"bin,omitempty"`
	Man          *ManReference        `json:"man,omitempty"`
	Repository   *RepositoryReference `json:"repository,omitempty"`
	Scripts      map[string]string    `json:"scripts,omitempty"`

	Dependencies         map[string]string    `json:"dependencies,omitempty"`
	DevDependencies      map[string]string    `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string    `json:"peerDependencies,omitempty"`
	BundledDependencies  *BundledDependencies `json:"bundledDependencies,omitempty"`
	OptionalDependencies map[string]string    `json:"optionalDependencies,omitempty"`
	Resolutions          map[string]string    `json:"resolutions,omitempty"`

	Engines map[string]string `json:"engines,omitempty"`
	Private *bool             `json:"private,omitempty"`
	OS      []string          `json:"os,omitempty"`
	CPU     []string          `json:"cpu,omitempty"`

	// Config is free-form and kept as written
	Config json.RawMessage `json:"config,omitempty"`
	Pnpm   *Pnpm           `json:"pnpm,omitempty"`

	// Extras holds every top-level key not listed above.
	Extras shape.Extras `json:"-"`
}

// Pnpm holds pnpm specific settings
type Pnpm struct {
	Overrides map[string]string `json:"overrides,omitempty"`

	Extras shape.Extras `json:"-"`
}

// IsEmpty reports whether no pnpm setting is present
func (p Pnpm) IsEmpty() bool {
	return len(p.Overrides) == 0 && p.Extras.Len() == 0
}

func (p Pnpm) MarshalJSON() ([]byte, error) {
	return shape.Encode(p)
}

// Parse reads a manifest from JSON text
func Parse(data []byte) (*Manifest, error) {
	raw, err := shape.ParseObject(data)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

// ParseString reads a manifest from a JSON string
func ParseString(s string) (*Manifest, error) {
	return Parse([]byte(s))
}

// FromValue reads a manifest from an already decoded JSON value
func FromValue(v any) (*Manifest, error) {
	raw, err := shape.FromValue(v)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func decode(raw json.RawMessage) (*Manifest, error) {
	var m Manifest
	if err := shape.Decode(raw, &m, ""); err != nil {
		return nil, err
	}
	return &m, nil
}

// Marshal writes the manifest as compact JSON
func (m *Manifest) Marshal() ([]byte, error) {
	return shape.Encode(m)
}

// MarshalIndent writes the manifest as indented JSON
func (m *Manifest) MarshalIndent(prefix, indent string) ([]byte, error) {
	data, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToValue returns the manifest as generic JSON values
func (m *Manifest) ToValue() (any, error) {
	data, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return shape.ToValue(data)
}

// DependencyCount returns the number of entries across every dependency map
func (m *Manifest) DependencyCount() int {
	n := len(m.Dependencies) + len(m.DevDependencies) + len(m.PeerDependencies) +
		len(m.OptionalDependencies) + len(m.Resolutions)
	if m.BundledDependencies != nil {
		n += len(m.BundledDependencies.Packages())
	}
	return n
}

func (m Manifest) MarshalJSON() ([]byte, error) {
	return shape.Encode(m)
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	return shape.Decode(data, m, "")
}
