// Package shape resolves JSON values that may arrive in more than one shape
// into typed Go values, and keeps unrecognized object members so documents
// survive a parse/serialize round trip.
package shape

import "strconv"

// Kind is the syntactic kind of a JSON value
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "boolean",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

// String returns the human readable kind name used in error messages
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindOf reports the kind of a raw JSON value by looking at its first
// significant byte. The value is assumed to be syntactically valid.
func KindOf(raw []byte) Kind {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case 'n':
			return Null
		case 't', 'f':
			return Bool
		case '"':
			return String
		case '[':
			return Array
		case '{':
			return Object
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return Number
		default:
			return Invalid
		}
	}
	return Invalid
}
