package shape

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		raw      string
		expected Kind
	}{
		{`null`, Null},
		{`true`, Bool},
		{` false`, Bool},
		{`-1.5e3`, Number},
		{`0`, Number},
		{`"x"`, String},
		{"\n\t[1]", Array},
		{`{}`, Object},
		{``, Invalid},
		{`   `, Invalid},
		{`x`, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf([]byte(tt.raw)))
		})
	}
}

func TestPath(t *testing.T) {
	var root Path
	assert.Equal(t, "<root>", root.String())
	assert.Equal(t, "author", root.Key("author").String())
	assert.Equal(t, "contributors[1].name", root.Key("contributors").Index(1).Key("name").String())
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "shape mismatch",
			err:      NewShapeMismatch("author", Number, String, Object),
			expected: "shape-mismatch: author: expected string or object, got number",
		},
		{
			name:     "shape mismatch with three kinds",
			err:      NewShapeMismatch("bundledDependencies", String, Array, Object, Bool),
			expected: "shape-mismatch: bundledDependencies: expected array, object or boolean, got string",
		},
		{
			name:     "not an object",
			err:      NewNotAnObject(Array),
			expected: "not-an-object: top-level value is array",
		},
		{
			name:     "malformed",
			err:      NewMalformedJSON(errors.New("unexpected end of JSON input")),
			expected: "malformed-json: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Is(t *testing.T) {
	err := error(NewShapeMismatch("x", Bool, String))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.False(t, errors.Is(err, ErrNotAnObject))
	assert.True(t, errors.Is(err, &ParseError{Type: ErrorTypeShapeMismatch}))

	malformed := error(NewMalformedJSON(ErrEmptyInput))
	assert.True(t, errors.Is(malformed, ErrMalformedJSON))
	assert.True(t, errors.Is(malformed, ErrEmptyInput))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, Path("x"), parseErr.Path)
	assert.Equal(t, []Kind{String}, parseErr.Expected)
	assert.Equal(t, Bool, parseErr.Actual)
}

func TestParseObject(t *testing.T) {
	raw, err := ParseObject([]byte(` {"a": 1} `))
	require.NoError(t, err)
	assert.Equal(t, Object, KindOf(raw))

	_, err = ParseObject([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrNotAnObject)

	_, err = ParseObject([]byte(`"text"`))
	assert.ErrorIs(t, err, ErrNotAnObject)

	_, err = ParseObject([]byte(`{"a": 1`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = ParseObject([]byte(`{"a": 1} {"b": 2}`))
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = ParseObject([]byte("  \n"))
	assert.ErrorIs(t, err, ErrMalformedJSON)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMembers_PreservesOrderAndDuplicates(t *testing.T) {
	members, err := Members(json.RawMessage(`{"z": 1, "a": {"nested": [1, 2]}, "z": "again"}`))
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
	assert.JSONEq(t, `{"nested": [1, 2]}`, string(members[1].Value))
	assert.Equal(t, `"again"`, string(members[2].Value))
}

func TestElements(t *testing.T) {
	elements, err := Elements(json.RawMessage(`[1, "two", {"three": 3}, []]`))
	require.NoError(t, err)
	require.Len(t, elements, 4)
	assert.Equal(t, Number, KindOf(elements[0]))
	assert.Equal(t, String, KindOf(elements[1]))
	assert.Equal(t, Object, KindOf(elements[2]))
	assert.Equal(t, Array, KindOf(elements[3]))

	empty, err := Elements(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarshal_DoesNotEscapeHTML(t *testing.T) {
	out, err := Marshal("Jane Doe <jane@doe.dev> & co")
	require.NoError(t, err)
	assert.Equal(t, `"Jane Doe <jane@doe.dev> & co"`, string(out))
}

func TestToValue_KeepsNumbers(t *testing.T) {
	v, err := ToValue([]byte(`{"n": 12345678901234567890}`))
	require.NoError(t, err)
	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890"), obj["n"])
}

func TestFromValue(t *testing.T) {
	raw, err := FromValue(map[string]any{"name": "pkg", "private": false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "pkg", "private": false}`, string(raw))

	_, err = FromValue([]any{"a"})
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestResolve(t *testing.T) {
	var (
		s    string
		list []string
	)
	variants := func() []Variant {
		return []Variant{Into(String, &s), Into(Array, &list)}
	}

	require.NoError(t, Resolve(json.RawMessage(`"one"`), "man", variants()...))
	assert.Equal(t, "one", s)

	require.NoError(t, Resolve(json.RawMessage(`["a", "b"]`), "man", variants()...))
	assert.Equal(t, []string{"a", "b"}, list)

	err := Resolve(json.RawMessage(`{"a": 1}`), "man", variants()...)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrorTypeShapeMismatch, parseErr.Type)
	assert.Equal(t, Path("man"), parseErr.Path)
	assert.Equal(t, []Kind{String, Array}, parseErr.Expected)
	assert.Equal(t, Object, parseErr.Actual)
}

func TestExpect(t *testing.T) {
	assert.NoError(t, Expect(json.RawMessage(`true`), "flag", Bool))
	assert.ErrorIs(t, Expect(json.RawMessage(`"true"`), "flag", Bool), ErrShapeMismatch)
}

func TestJoinKinds(t *testing.T) {
	assert.Equal(t, "nothing", JoinKinds(nil))
	assert.Equal(t, "string", JoinKinds([]Kind{String}))
	assert.Equal(t, "string or object", JoinKinds([]Kind{String, Object}))
	assert.Equal(t, "array, object or boolean", JoinKinds([]Kind{Array, Object, Bool}))
}
