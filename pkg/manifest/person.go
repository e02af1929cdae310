package manifest

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mcncl/jsconf/pkg/shape"
)

// Person is the object form of an author or contributor
type Person struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	URL   *string `json:"url,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (p Person) MarshalJSON() ([]byte, error) {
	return shape.Encode(p)
}

// String renders p in the "Name <email> (url)" shorthand
func (p Person) String() string {
	var b strings.Builder
	if p.Name != nil {
		b.WriteString(*p.Name)
	}
	if p.Email != nil && *p.Email != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<" + *p.Email + ">")
	}
	if p.URL != nil && *p.URL != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("(" + *p.URL + ")")
	}
	return b.String()
}

// PersonReference is an author or contributor: either the shorthand string
// "Name <email> (url)" or a Person object. Full is used when set.
//
// Resolution order: string, then object.
type PersonReference struct {
	Short string
	Full  *Person
}

// PersonRef builds the object form
func PersonRef(p Person) PersonReference {
	return PersonReference{Full: &p}
}

// IsShorthand reports whether the string form is set
func (r PersonReference) IsShorthand() bool {
	return r.Full == nil
}

var personShorthand = regexp.MustCompile(`^\s*([^<(]*?)\s*(?:<([^>]*)>)?\s*(?:\(([^)]*)\))?\s*$`)

// Person returns the object form, expanding the shorthand when needed. A
// shorthand that does not follow the usual layout becomes the name.
func (r PersonReference) Person() Person {
	if r.Full != nil {
		return *r.Full
	}
	match := personShorthand.FindStringSubmatch(r.Short)
	if match == nil {
		name := strings.TrimSpace(r.Short)
		return Person{Name: &name}
	}
	name := match[1]
	p := Person{Name: &name}
	if match[2] != "" {
		email := match[2]
		p.Email = &email
	}
	if match[3] != "" {
		url := match[3]
		p.URL = &url
	}
	return p
}

func (r PersonReference) MarshalJSON() ([]byte, error) {
	if r.Full != nil {
		return shape.Encode(r.Full)
	}
	return shape.Marshal(r.Short)
}

func (r *PersonReference) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = PersonReference{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &r.Short),
		shape.Into(shape.Object, &r.Full),
	)
}

func (r *PersonReference) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }
