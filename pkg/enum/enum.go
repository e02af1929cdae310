// Package enum maps free-form strings onto closed sets of known symbols
// without ever rejecting a value: anything outside the table is kept in an
// escape symbol together with its text.
package enum

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry declares one known symbol. Name is the canonical spelling written
// when a value was built in code; Aliases are further spellings that map to
// the same symbol.
type Entry[S comparable] struct {
	Symbol  S
	Name    string
	Aliases []string
}

// Value is the result of mapping a string
type Value[S comparable] struct {
	// Symbol is the matched symbol, or the table's escape symbol.
	Symbol S
	// Name is the normalized form of the input, e.g. "ES2099" for "es2099".
	Name string
	// Raw is the input as given. Empty for values built with Of.
	Raw string
}

// Table is a fixed lookup from normalized strings to symbols. A Table is
// immutable after construction and safe for concurrent use.
type Table[S comparable] struct {
	family    string
	other     S
	normalize func(string) string
	lookup    map[string]S
	canonical map[S]string
	order     []S
}

// Option customizes a Table
type Option func(*options)

type options struct {
	separators string
}

// WithSeparators folds every rune in seps to '.', so that compound names
// written with a different separator still form one token, e.g. "es2015_promise"
// and "ES2015.Promise".
func WithSeparators(seps string) Option {
	return func(o *options) {
		o.separators = seps
	}
}

// NewTable builds a table for one enumeration family. other is the escape
// symbol returned for unknown input; it must not appear in entries.
func NewTable[S comparable](family string, other S, entries []Entry[S], opts ...Option) *Table[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[S]{
		family:    family,
		other:     other,
		lookup:    make(map[string]S, len(entries)),
		canonical: make(map[S]string, len(entries)),
	}
	t.normalize = func(s string) string {
		s = Fold(s)
		if o.separators != "" {
			s = strings.Map(func(r rune) rune {
				if strings.ContainsRune(o.separators, r) {
					return '.'
				}
				return r
			}, s)
		}
		return s
	}

	for _, e := range entries {
		if e.Symbol == other {
			panic("enum: escape symbol registered as a known entry in " + family)
		}
		if _, dup := t.canonical[e.Symbol]; dup {
			panic("enum: duplicate symbol " + e.Name + " in " + family)
		}
		t.canonical[e.Symbol] = e.Name
		t.order = append(t.order, e.Symbol)
		for _, name := range append([]string{e.Name}, e.Aliases...) {
			key := t.normalize(name)
			if _, dup := t.lookup[key]; dup {
				panic("enum: duplicate name " + name + " in " + family)
			}
			t.lookup[key] = e.Symbol
		}
	}
	return t
}

// Fold returns the canonical upper case form of s
func Fold(s string) string {
	// A Caser keeps state between calls, so one is made per call
	return cases.Upper(language.Und).String(s)
}

// Map normalizes raw and looks it up. It never fails: unknown input yields
// the escape symbol with Name set to the normalized input.
func (t *Table[S]) Map(raw string) Value[S] {
	name := t.normalize(raw)
	symbol, ok := t.lookup[name]
	if !ok {
		symbol = t.other
	}
	return Value[S]{Symbol: symbol, Name: name, Raw: raw}
}

// Of builds the value for a known symbol in code
func (t *Table[S]) Of(symbol S) Value[S] {
	name, ok := t.canonical[symbol]
	if !ok {
		return Value[S]{Symbol: t.other}
	}
	return Value[S]{Symbol: symbol, Name: t.normalize(name)}
}

// Other builds an escape value carrying s
func (t *Table[S]) Other(s string) Value[S] {
	return Value[S]{Symbol: t.other, Name: t.normalize(s), Raw: s}
}

// Family returns the enumeration name, e.g. "target"
func (t *Table[S]) Family() string {
	return t.family
}

// Symbols lists the known symbols in declaration order
func (t *Table[S]) Symbols() []S {
	return append([]S(nil), t.order...)
}

// Canonical returns the canonical spelling of a known symbol
func (t *Table[S]) Canonical(symbol S) (string, bool) {
	name, ok := t.canonical[symbol]
	return name, ok
}

// Known reports whether v holds a known symbol
func (t *Table[S]) Known(v Value[S]) bool {
	return v.Symbol != t.other
}

// Text returns the string written for v on serialization. The input
// spelling is kept when it still maps to v.Symbol, so unknown values and the
// caller's casing survive a round trip; values built in code use the
// canonical spelling.
func (t *Table[S]) Text(v Value[S]) string {
	if v.Raw != "" && t.Map(v.Raw).Symbol == v.Symbol {
		return v.Raw
	}
	if name, ok := t.canonical[v.Symbol]; ok && v.Symbol != t.other {
		return name
	}
	return v.Name
}
