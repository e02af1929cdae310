package shape

import "encoding/json"

// Unmarshaler is implemented by types that resolve their own shape. path is
// the location of raw in the document and must be carried into any error.
type Unmarshaler interface {
	UnmarshalShape(raw json.RawMessage, path Path) error
}

// Variant is one accepted shape of a flexible field
type Variant struct {
	Kind   Kind
	Decode func(raw json.RawMessage, path Path) error
}

// Resolve picks the first variant whose kind equals the kind of raw and
// decodes with it. Only the syntactic kind is inspected; the content of the
// value never influences which variant is chosen.
func Resolve(raw json.RawMessage, path Path, variants ...Variant) error {
	kind := KindOf(raw)
	for _, v := range variants {
		if v.Kind == kind {
			return v.Decode(raw, path)
		}
	}
	expected := make([]Kind, len(variants))
	for i, v := range variants {
		expected[i] = v.Kind
	}
	return NewShapeMismatch(path, kind, expected...)
}

// Into returns a Variant of the given kind that decodes into dst
func Into(kind Kind, dst any) Variant {
	return Variant{
		Kind: kind,
		Decode: func(raw json.RawMessage, path Path) error {
			return Decode(raw, dst, path)
		},
	}
}

// Expect fails with a shape mismatch unless raw has the given kind
func Expect(raw json.RawMessage, path Path, kind Kind) error {
	if actual := KindOf(raw); actual != kind {
		return NewShapeMismatch(path, actual, kind)
	}
	return nil
}
