package shape

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Member is one key/value pair of a JSON object, in document order
type Member struct {
	Key   string
	Value json.RawMessage
}

// ParseObject validates data as a single JSON value and checks that it is an
// object. The returned raw message aliases data.
func ParseObject(data []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewMalformedJSON(ErrEmptyInput)
	}
	// Unmarshal into a RawMessage rejects syntax errors and trailing values
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewMalformedJSON(err)
	}
	if kind := KindOf(raw); kind != Object {
		return nil, NewNotAnObject(kind)
	}
	return raw, nil
}

// FromValue encodes an already decoded JSON value (maps, slices, strings,
// numbers, booleans, nil) and validates it as a document object
func FromValue(v any) (json.RawMessage, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, NewMalformedJSON(err)
	}
	return ParseObject(data)
}

// ToValue decodes serialized JSON into generic Go values. Numbers are kept as
// json.Number so no precision is lost.
func ToValue(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Members splits a raw JSON object into its members, preserving order.
// Duplicate keys are returned as they appear.
func Members(raw json.RawMessage) ([]Member, error) {
	result, err := parseValue(raw, Object)
	if err != nil {
		return nil, err
	}
	var members []Member
	result.ForEach(func(key, value gjson.Result) bool {
		members = append(members, Member{Key: key.String(), Value: json.RawMessage(value.Raw)})
		return true
	})
	return members, nil
}

// Elements splits a raw JSON array into its elements
func Elements(raw json.RawMessage) ([]json.RawMessage, error) {
	result, err := parseValue(raw, Array)
	if err != nil {
		return nil, err
	}
	var elements []json.RawMessage
	result.ForEach(func(_, value gjson.Result) bool {
		elements = append(elements, json.RawMessage(value.Raw))
		return true
	})
	return elements, nil
}

func parseValue(raw json.RawMessage, want Kind) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, NewMalformedJSON(fmt.Errorf("invalid JSON %s", want))
	}
	if kind := KindOf(raw); kind != want {
		return gjson.Result{}, NewMalformedJSON(fmt.Errorf("expected %s, got %s", want, kind))
	}
	return gjson.ParseBytes(raw), nil
}

// Marshal encodes v like json.Marshal but leaves <, > and & unescaped, so
// values such as "Jane <jane@doe.dev>" keep their shape on the wire
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Compact returns raw without insignificant whitespace. Invalid input is
// returned unchanged.
func Compact(raw []byte) json.RawMessage {
	if !gjson.ValidBytes(raw) {
		return append(json.RawMessage(nil), raw...)
	}
	return pretty.Ugly(raw)
}
