package manifest

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/mcncl/jsconf/pkg/shape"
)

// Repository is the object form of `repository`
type Repository struct {
	Type      *string `json:"type,omitempty"`
	URL       *string `json:"url,omitempty"`
	Directory *string `json:"directory,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (r Repository) MarshalJSON() ([]byte, error) {
	return shape.Encode(r)
}

// RepositoryReference is the `repository` field: either a shorthand string
// such as "github:user/repo" or a Repository object. Full is used when set.
//
// Resolution order: string, then object.
type RepositoryReference struct {
	Short string
	Full  *Repository
}

// IsShorthand reports whether the string form is set
func (r RepositoryReference) IsShorthand() bool {
	return r.Full == nil
}

var repositoryHosts = map[string]string{
	"github":    "https://github.com/",
	"gitlab":    "https://gitlab.com/",
	"bitbucket": "https://bitbucket.org/",
	"gist":      "https://gist.github.com/",
}

// Repository returns the object form. Hosted shorthands ("github:user/repo",
// "gitlab:", "bitbucket:", "gist:" and a bare "user/repo") expand to a git
// URL; any other string is taken as the URL itself.
func (r RepositoryReference) Repository() Repository {
	if r.Full != nil {
		return *r.Full
	}
	short := strings.TrimSpace(r.Short)
	host, rest, found := strings.Cut(short, ":")
	if !found {
		host, rest = "github", short
	}
	url := short
	base, hosted := repositoryHosts[host]
	if hosted && rest != "" && !strings.Contains(rest, "//") && (host == "gist" || strings.Count(rest, "/") == 1) {
		url = base + strings.TrimSuffix(rest, ".git") + ".git"
	}
	typ := "git"
	return Repository{Type: &typ, URL: &url}
}

func (r RepositoryReference) MarshalJSON() ([]byte, error) {
	if r.Full != nil {
		return shape.Encode(r.Full)
	}
	return shape.Marshal(r.Short)
}

func (r *RepositoryReference) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = RepositoryReference{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &r.Short),
		shape.Into(shape.Object, &r.Full),
	)
}

func (r *RepositoryReference) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }

// ManReference is the `man` field: a single page or a list of pages.
//
// Resolution order: string, then array.
type ManReference struct {
	Single   string
	Multiple []string
}

// IsList reports whether the list form is set
func (r ManReference) IsList() bool {
	return r.Multiple != nil
}

// Pages returns the referenced pages in order
func (r ManReference) Pages() []string {
	if r.IsList() {
		return r.Multiple
	}
	return []string{r.Single}
}

func (r ManReference) MarshalJSON() ([]byte, error) {
	if r.IsList() {
		return shape.Marshal(r.Multiple)
	}
	return shape.Marshal(r.Single)
}

func (r *ManReference) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = ManReference{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &r.Single),
		shape.Into(shape.Array, &r.Multiple),
	)
}

func (r *ManReference) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }

// Bug is the object form of `bugs`
type Bug struct {
	Email *string `json:"email,omitempty"`
	URL   *string `json:"url,omitempty"`

	Extras shape.Extras `json:"-"`
}

func (b Bug) MarshalJSON() ([]byte, error) {
	return shape.Encode(b)
}

// BugsReference is the `bugs` field: an issue tracker URL or a Bug object.
//
// Resolution order: string, then object.
type BugsReference struct {
	URL  string
	Full *Bug
}

// Bug returns the object form
func (r BugsReference) Bug() Bug {
	if r.Full != nil {
		return *r.Full
	}
	url := r.URL
	return Bug{URL: &url}
}

func (r BugsReference) MarshalJSON() ([]byte, error) {
	if r.Full != nil {
		return shape.Encode(r.Full)
	}
	return shape.Marshal(r.URL)
}

func (r *BugsReference) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = BugsReference{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &r.URL),
		shape.Into(shape.Object, &r.Full),
	)
}

func (r *BugsReference) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }

// BinReference is the `bin` field: a single executable path, installed under
// the package name, or a mapping of command names to paths.
//
// Resolution order: string, then object.
type BinReference struct {
	Path     string
	Commands map[string]string
}

// IsMap reports whether the mapping form is set
func (r BinReference) IsMap() bool {
	return r.Commands != nil
}

// Resolve returns the command to path mapping. The string form is installed
// under the package name without its scope.
func (r BinReference) Resolve(packageName string) map[string]string {
	if r.IsMap() {
		return r.Commands
	}
	name := packageName
	if i := strings.LastIndex(name, "/"); strings.HasPrefix(name, "@") && i >= 0 {
		name = name[i+1:]
	}
	return map[string]string{name: r.Path}
}

func (r BinReference) MarshalJSON() ([]byte, error) {
	if r.IsMap() {
		return shape.Marshal(r.Commands)
	}
	return shape.Marshal(r.Path)
}

func (r *BinReference) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*r = BinReference{}
	return shape.Resolve(raw, path,
		shape.Into(shape.String, &r.Path),
		shape.Into(shape.Object, &r.Commands),
	)
}

func (r *BinReference) UnmarshalJSON(data []byte) error { return r.UnmarshalShape(data, "") }

// BundledDependencies is the `bundledDependencies` field: a list of package
// names, a mapping of names to ranges, or a boolean meaning every dependency.
// Bool wins over Ranges, which wins over Names.
//
// Resolution order: array, then object, then boolean.
type BundledDependencies struct {
	Names  []string
	Ranges map[string]string
	Bool   *bool
}

// Packages returns the bundled package names, sorted for the mapping form.
// The boolean form names no packages itself.
func (b BundledDependencies) Packages() []string {
	switch {
	case b.Bool != nil:
		return nil
	case b.Ranges != nil:
		return slices.Sorted(maps.Keys(b.Ranges))
	}
	return b.Names
}

func (b BundledDependencies) MarshalJSON() ([]byte, error) {
	switch {
	case b.Bool != nil:
		return shape.Marshal(*b.Bool)
	case b.Ranges != nil:
		return shape.Marshal(b.Ranges)
	case b.Names == nil:
		return []byte("[]"), nil
	}
	return shape.Marshal(b.Names)
}

func (b *BundledDependencies) UnmarshalShape(raw json.RawMessage, path shape.Path) error {
	*b = BundledDependencies{}
	return shape.Resolve(raw, path,
		shape.Into(shape.Array, &b.Names),
		shape.Into(shape.Object, &b.Ranges),
		shape.Into(shape.Bool, &b.Bool),
	)
}

func (b *BundledDependencies) UnmarshalJSON(data []byte) error { return b.UnmarshalShape(data, "") }
