package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	rawMessageType = reflect.TypeFor[json.RawMessage]()
	extrasType     = reflect.TypeFor[Extras]()
)

type field struct {
	name      string
	index     int
	omitEmpty bool
}

type structInfo struct {
	fields []field
	byName map[string]int
	// extras is the index of the Extras field, or -1
	extras int
}

var structCache sync.Map // map[reflect.Type]*structInfo

// inspect reads the json tags of a struct type. Fields tagged "-" are
// skipped, except for an Extras field which becomes the catch-all slot.
func inspect(t reflect.Type) *structInfo {
	if info, ok := structCache.Load(t); ok {
		return info.(*structInfo)
	}
	info := &structInfo{byName: make(map[string]int), extras: -1}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Type == extrasType {
			info.extras = i
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		info.byName[name] = len(info.fields)
		info.fields = append(info.fields, field{
			name:      name,
			index:     i,
			omitEmpty: strings.Contains(","+opts+",", ",omitempty,"),
		})
	}
	actual, _ := structCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}

// FieldType returns the Go type of the field that t declares under the wire
// name, following pointers to the struct. Extras members are not fields.
func FieldType(t reflect.Type, name string) (reflect.Type, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	info := inspect(t)
	i, ok := info.byName[name]
	if !ok {
		return nil, false
	}
	return t.Field(info.fields[i].index).Type, true
}

// Decode resolves raw into v, which must be a non-nil pointer. Each value is
// checked against the kind its Go type accepts; types implementing
// Unmarshaler resolve themselves. Object members without a matching field
// are kept in the struct's Extras field when it has one.
func Decode(raw json.RawMessage, v any, path Path) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("shape: Decode needs a non-nil pointer, got %T", v)
	}
	return decodeValue(raw, rv.Elem(), path)
}

func decodeValue(raw json.RawMessage, rv reflect.Value, path Path) error {
	kind := KindOf(raw)
	t := rv.Type()

	if t == rawMessageType {
		if kind == Null {
			rv.Set(reflect.Zero(t))
			return nil
		}
		rv.Set(reflect.ValueOf(Compact(raw)))
		return nil
	}

	// Optional values: null means absent
	if t.Kind() == reflect.Pointer {
		if kind == Null {
			rv.Set(reflect.Zero(t))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return decodeValue(raw, rv.Elem(), path)
	}

	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalShape(raw, path)
		}
	}

	switch t.Kind() {
	case reflect.String:
		if kind != String {
			return NewShapeMismatch(path, kind, String)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return NewMalformedJSON(err)
		}
		rv.SetString(s)
		return nil

	case reflect.Bool:
		if kind != Bool {
			return NewShapeMismatch(path, kind, Bool)
		}
		rv.SetBool(bytes.HasPrefix(bytes.TrimSpace(raw), []byte("true")))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if kind != Number {
			return NewShapeMismatch(path, kind, Number)
		}
		n, ok := parseInt(raw)
		if !ok || rv.OverflowInt(n) {
			return numberMismatch(path, raw, t)
		}
		rv.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if kind != Number {
			return NewShapeMismatch(path, kind, Number)
		}
		n, ok := parseUint(raw)
		if !ok || rv.OverflowUint(n) {
			return numberMismatch(path, raw, t)
		}
		rv.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		if kind != Number {
			return NewShapeMismatch(path, kind, Number)
		}
		f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), t.Bits())
		if err != nil {
			return numberMismatch(path, raw, t)
		}
		rv.SetFloat(f)
		return nil

	case reflect.Slice:
		if kind == Null {
			rv.Set(reflect.Zero(t))
			return nil
		}
		if kind != Array {
			return NewShapeMismatch(path, kind, Array)
		}
		elements, err := Elements(raw)
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(t, len(elements), len(elements))
		for i, elem := range elements {
			if err := decodeValue(elem, s.Index(i), path.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(s)
		return nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return fmt.Errorf("shape: unsupported map key type %s at %s", t.Key(), path)
		}
		if kind == Null {
			rv.Set(reflect.Zero(t))
			return nil
		}
		if kind != Object {
			return NewShapeMismatch(path, kind, Object)
		}
		members, err := Members(raw)
		if err != nil {
			return err
		}
		m := reflect.MakeMapWithSize(t, len(members))
		for _, member := range members {
			elem := reflect.New(t.Elem()).Elem()
			if err := decodeValue(member.Value, elem, path.Key(member.Key)); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(member.Key).Convert(t.Key()), elem)
		}
		rv.Set(m)
		return nil

	case reflect.Struct:
		if kind != Object {
			return NewShapeMismatch(path, kind, Object)
		}
		return decodeStruct(raw, rv, path)

	case reflect.Interface:
		if t.NumMethod() != 0 {
			break
		}
		if kind == Null {
			rv.Set(reflect.Zero(t))
			return nil
		}
		v, err := ToValue(raw)
		if err != nil {
			return NewMalformedJSON(err)
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	return fmt.Errorf("shape: unsupported type %s at %s", t, path)
}

func decodeStruct(raw json.RawMessage, rv reflect.Value, path Path) error {
	info := inspect(rv.Type())
	members, err := Members(raw)
	if err != nil {
		return err
	}

	rv.Set(reflect.Zero(rv.Type()))
	var extras *Extras
	if info.extras >= 0 {
		extras = rv.Field(info.extras).Addr().Interface().(*Extras)
	}

	for _, m := range members {
		i, ok := info.byName[m.Key]
		if !ok {
			if extras != nil {
				extras.Set(m.Key, m.Value)
			}
			continue
		}
		f := info.fields[i]
		fv := rv.Field(f.index)
		if err := decodeValue(m.Value, fv, path.Key(m.Key)); err != nil {
			return err
		}
		// An empty omittable collection reads the same as an absent one
		if f.omitEmpty && (fv.Kind() == reflect.Slice || fv.Kind() == reflect.Map) && fv.Len() == 0 {
			fv.Set(reflect.Zero(fv.Type()))
		}
	}
	return nil
}

// integral parses a JSON number that has no fractional part. Exponent forms
// such as 1e2 are accepted.
func integral(raw json.RawMessage) (float64, bool) {
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

func parseInt(raw json.RawMessage) (int64, bool) {
	if n, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64); err == nil {
		return n, true
	}
	f, ok := integral(raw)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseUint(raw json.RawMessage) (uint64, bool) {
	if n, err := strconv.ParseUint(string(bytes.TrimSpace(raw)), 10, 64); err == nil {
		return n, true
	}
	f, ok := integral(raw)
	if !ok || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func numberMismatch(path Path, raw json.RawMessage, t reflect.Type) *ParseError {
	text := bytes.TrimSpace(raw)
	err := NewShapeMismatch(path, Number, Number)
	if f, perr := strconv.ParseFloat(string(text), 64); perr == nil && f != math.Trunc(f) {
		err.Err = fmt.Errorf("%s is not an integer", text)
	} else {
		err.Err = fmt.Errorf("%s is out of range for %s", text, t)
	}
	return err
}

// Encode writes a struct as a JSON object: declared fields in declaration
// order, each omitted when tagged omitempty and empty, followed by the
// members of its Extras field in their preserved order. An Extras key that
// names a declared field fills that field's slot when the field itself is
// omitted and is dropped otherwise. Non-struct values are encoded with
// Marshal.
func Encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Marshal(v)
	}

	info := inspect(rv.Type())
	var extras Extras
	if info.extras >= 0 {
		extras = rv.Field(info.extras).Interface().(Extras)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	for _, f := range info.fields {
		fv := rv.Field(f.index)
		var value []byte
		if f.omitEmpty && isEmpty(fv) {
			raw, ok := extras.Get(f.name)
			if !ok {
				continue
			}
			value = raw
		} else {
			var err error
			if value, err = Marshal(fv.Interface()); err != nil {
				return nil, fmt.Errorf("encoding %q: %w", f.name, err)
			}
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.name, value); err != nil {
			return nil, err
		}
		n++
	}
	for key, value := range extras.All() {
		if _, declared := info.byName[key]; declared {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, value); err != nil {
			return nil, err
		}
		n++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}
