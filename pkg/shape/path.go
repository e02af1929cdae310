package shape

import "strconv"

// Path locates a value inside a document, e.g. "contributors[1].name".
// The empty path is the document root.
type Path string

// Key returns the path of an object member below p
func (p Path) Key(key string) Path {
	if p == "" {
		return Path(key)
	}
	return p + "." + Path(key)
}

// Index returns the path of an array element below p
func (p Path) Index(i int) Path {
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

// String returns the path, or "<root>" for the document root
func (p Path) String() string {
	if p == "" {
		return "<root>"
	}
	return string(p)
}
