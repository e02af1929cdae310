package shape

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Extras holds object members that no declared field claimed. Keys keep the
// order in which they were first seen; values are stored as compacted raw
// JSON so they are re-emitted exactly.
//
// The zero value is an empty, ready to use Extras.
type Extras struct {
	keys   []string
	values map[string]json.RawMessage
}

// Len returns the number of preserved members
func (e *Extras) Len() int {
	return len(e.keys)
}

// Keys returns the preserved keys in order
func (e *Extras) Keys() []string {
	return slices.Clone(e.keys)
}

// Get returns the raw value stored under key
func (e *Extras) Get(key string) (json.RawMessage, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Set stores a raw JSON value. An existing key keeps its position. A key
// that names a declared field of the owning struct is written in that
// field's slot, and only while the field is unset.
func (e *Extras) Set(key string, raw json.RawMessage) {
	if e.values == nil {
		e.values = make(map[string]json.RawMessage)
	}
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = Compact(raw)
}

// SetValue encodes v and stores it under key
func (e *Extras) SetValue(key string, v any) error {
	raw, err := Marshal(v)
	if err != nil {
		return err
	}
	e.Set(key, raw)
	return nil
}

// Delete removes key, reporting whether it was present
func (e *Extras) Delete(key string) bool {
	if _, ok := e.values[key]; !ok {
		return false
	}
	delete(e.values, key)
	e.keys = slices.DeleteFunc(e.keys, func(k string) bool { return k == key })
	return true
}

// All iterates over the preserved members in order
func (e *Extras) All() iter.Seq2[string, json.RawMessage] {
	return func(yield func(string, json.RawMessage) bool) {
		for _, key := range e.keys {
			if !yield(key, e.values[key]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the members as an object in their preserved order
func (e Extras) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, e.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents with the members of a JSON object
func (e *Extras) UnmarshalJSON(data []byte) error {
	if kind := KindOf(data); kind != Object {
		return NewShapeMismatch("", kind, Object)
	}
	members, err := Members(data)
	if err != nil {
		return err
	}
	*e = Extras{}
	for _, m := range members {
		e.Set(m.Key, m.Value)
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value []byte) error {
	k, err := Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(value)
	return nil
}
