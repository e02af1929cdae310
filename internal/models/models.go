package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mcncl/jsconf/pkg/manifest"
	"github.com/mcncl/jsconf/pkg/shape"
	"github.com/mcncl/jsconf/pkg/tsconfig"
)

// DocumentKind identifies which configuration format a document uses
type DocumentKind string

const (
	KindUnknown       DocumentKind = ""
	KindManifest      DocumentKind = "package"
	KindProjectConfig DocumentKind = "tsconfig"
)

// ParseKind maps a user supplied kind name onto a DocumentKind. The empty
// string means "detect".
func ParseKind(s string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return KindUnknown, nil
	case "package", "package.json", "manifest":
		return KindManifest, nil
	case "tsconfig", "tsconfig.json", "jsconfig":
		return KindProjectConfig, nil
	}
	return KindUnknown, fmt.Errorf("unknown document kind %q", s)
}

// modelType returns the Go type behind a document kind
func (k DocumentKind) modelType() reflect.Type {
	switch k {
	case KindManifest:
		return reflect.TypeFor[manifest.Manifest]()
	case KindProjectConfig:
		return reflect.TypeFor[tsconfig.ProjectConfig]()
	}
	return nil
}

// WirePath walks segments through the model of kind k and renames a segment
// only where the renamed form is a declared field and the segment itself is
// not. Map keys and array indexes are kept as written, as is everything
// below a key the model does not declare.
func (k DocumentKind) WirePath(segments []string, rename func(string) string) []string {
	out := make([]string, len(segments))
	t := k.modelType()
	for i, segment := range segments {
		out[i] = segment
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil {
			continue
		}

		switch t.Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			t = t.Elem()
		case reflect.Struct:
			if ft, ok := shape.FieldType(t, segment); ok {
				t = ft
				continue
			}
			renamed := rename(segment)
			if ft, ok := shape.FieldType(t, renamed); ok && renamed != segment {
				out[i] = renamed
				t = ft
				continue
			}
			t = nil
		default:
			t = nil
		}
	}
	return out
}

// Document is a parsed configuration file. Exactly one of Manifest and
// ProjectConfig is set, matching Kind.
type Document struct {
	Kind DocumentKind
	// Source names where the document was read from, for messages.
	Source string

	Manifest      *manifest.Manifest
	ProjectConfig *tsconfig.ProjectConfig
}

// Model returns the typed document
func (d *Document) Model() any {
	switch d.Kind {
	case KindManifest:
		return d.Manifest
	case KindProjectConfig:
		return d.ProjectConfig
	}
	return nil
}

// Marshal writes the document back as compact JSON
func (d *Document) Marshal() ([]byte, error) {
	switch d.Kind {
	case KindManifest:
		return d.Manifest.Marshal()
	case KindProjectConfig:
		return d.ProjectConfig.Marshal()
	}
	return nil, fmt.Errorf("cannot serialize document of kind %q", d.Kind)
}

// UnknownKeys lists the top-level keys the model kept without interpreting
func (d *Document) UnknownKeys() []string {
	switch d.Kind {
	case KindManifest:
		return d.Manifest.Extras.Keys()
	case KindProjectConfig:
		return d.ProjectConfig.Extras.Keys()
	}
	return nil
}
