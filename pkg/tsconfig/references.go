package tsconfig

import (
	"encoding/json"

	"github.com/mcncl/jsconf/pkg/shape"
)

// Reference points at another project
type Reference struct {
	Path    *string `json:"path,omitempty"`
	Prepend *bool   `json:"prepend,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return shape.Encode(r)
}

// References is the `references` setting: either a boolean or a list of
// project references. Exactly one of Bool and List is meaningful; List is
// used when Bool is nil.
//
// Resolution order: boolean, then array.
type References struct {
	Bool *bool
	List []Reference
}

// ReferenceList builds the list variant
func ReferenceList(refs ...Reference) References {
	if refs == nil {
		refs = []Reference{}
	}
	return References{List: refs}
}

// IsList reports whether the list variant is set
func (r References) IsList() bool {
	return r.Bool == nil
}

func (r References) MarshalJSON() ([]byte, error) {
	if r.Bool != nil {
		return shape.Marshal(*r.Bool)
	}
	if r.List == nil {
		return []byte("[]"), nil
	}
	return shape.Marshal(r.List)
}

func (r *References) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = References{}
	return shape.Resolve(raw, path,
		shape.Into(shape.Bool, &r.Bool),
		shape.Into(shape.Array, &r.List),
	)
}

func (r *References) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }

// TypeAcquisitionOptions is the object form of `typeAcquisition`
type TypeAcquisitionOptions struct {
	Enable                              *bool    `json:"enable,omitempty"`
	Include                             []string `json:"include,omitempty"`
	Exclude                             []string `json:"exclude,omitempty"`
	DisableFilenameBasedTypeAcquisition *bool    `json:"disableFilenameBasedTypeAcquisition,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (o TypeAcquisitionOptions) MarshalJSON() ([]byte, error) {
	return shape.Encode(o)
}

// TypeAcquisition is the `typeAcquisition` setting: either a boolean or an
// options object. Options wins when both are set.
//
// Resolution order: boolean, then object.
type TypeAcquisition struct {
	Bool    *bool
	Options *TypeAcquisitionOptions
}

// Enabled reports whether type acquisition is switched on in either form
func (t TypeAcquisition) Enabled() bool {
	if t.Options != nil {
		return t.Options.Enable != nil && *t.Options.Enable
	}
	return t.Bool != nil && *t.Bool
}

func (t TypeAcquisition) MarshalJSON() ([]byte, error) {
	switch {
	case t.Options != nil:
		return shape.Encode(t.Options)
	case t.Bool != nil:
		return shape.Marshal(*t.Bool)
	}
	return shape.Encode(TypeAcquisitionOptions{})
}

func (t *TypeAcquisition) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*t = TypeAcquisition{}
	return shape.Resolve(raw, path,
		shape.Into(shape.Bool, &t.Bool),
		shape.Into(shape.Object, &t.Options),
	)
}

func (t *TypeAcquisition) UnmarshalJSON(data []byte) error { return t.UnmarshalShape(data, "") }

// Extends is the `extends` setting: a single configuration path or, since
// TypeScript 5.0, a list of them applied in order.
//
// Resolution order: string, then array.
type Extends struct {
	Path  string
	Paths []string
}

// IsList reports whether the list form is set
func (e Extends) IsList() bool {
	return e.Paths != nil
}

// All returns the referenced paths in order
func (e Extends) All() []string {
	if e.IsList() {
		return e.Paths
	}
	return []string{e.Path}
}

func (e Extends) MarshalJSON() ([]byte, error) {
	if e.IsList() {
		return shape.Marshal(e.Paths)
	}
	return shape.Marshal(e.Path)
}

func (e *Extends) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*e = Extends{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &e.Path),
		shape.Into(shape.Array, &e.Paths),
	)
}

func (e *Extends) UnmarshalJSON(data []byte) error { return e.UnmarshalShape(data, "") }
