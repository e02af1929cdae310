package formatter

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Options controls the layout of printed JSON
type Options struct {
	Indent string
	Prefix string
	// Width is the widest an array may be and still fit on one line
	Width    int
	SortKeys bool
	Compact  bool
	// Color adds ANSI colors for terminals
	Color           bool
	TrailingNewline bool
}

// DefaultOptions returns the layout used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Indent:          "  ",
		Width:           80,
		TrailingNewline: true,
	}
}

// Formatter is responsible for laying out serialized documents
type Formatter struct {
	opts Options
}

// NewFormatter creates a new Formatter instance
func NewFormatter(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format takes JSON text and returns it laid out according to the options.
// Key order is kept unless SortKeys is set.
func (f *Formatter) Format(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to format output: invalid JSON")
	}

	var out []byte
	if f.opts.Compact {
		out = data
		if f.opts.SortKeys {
			out = pretty.PrettyOptions(out, &pretty.Options{SortKeys: true})
		}
		out = pretty.Ugly(out)
	} else {
		out = pretty.PrettyOptions(data, &pretty.Options{
			Width:    f.opts.Width,
			Prefix:   f.opts.Prefix,
			Indent:   f.opts.Indent,
			SortKeys: f.opts.SortKeys,
		})
	}

	out = bytes.TrimRight(out, "\n")
	if f.opts.Color {
		out = pretty.Color(out, nil)
	}
	if f.opts.TrailingNewline {
		out = append(out, '\n')
	}
	return out, nil
}
