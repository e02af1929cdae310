package manifest

import (
	"encoding/json"
	"testing"

	"github.com/mcncl/jsconf/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
	"name": "@acme/widgets",
	"version": "1.4.0",
	"description": "Widgets & gadgets",
	"keywords": ["ui", "widgets"],
	"bugs": "https://github.com/acme/widgets/issues",
	"license": "MIT",
	"author": "Jane Doe <jane@doe.dev> (https://doe.dev)",
	"contributors": [
		{"name": "Sam Roe", "email": "sam@roe.dev", "twitter": "@sam"},
		"Alex Poe"
	],
	"main": "dist/index.js",
	"bin": "bin/widgets.js",
	"man": ["man/widgets.1", "man/widgets.5"],
	"repository": {"type": "git", "url": "https://github.com/acme/widgets.git", "directory": "packages/widgets"},
	"type": "module",
	"scripts": {"test": "vitest", "build": "tsc -b"},
	"dependencies": {"left-pad": "^1.3.0"},
	"devDependencies": {"typescript": "~5.4.0", "vitest": "^1.0.0"},
	"engines": {"node": ">=18"},
	"private": false,
	"os": ["linux", "darwin"],
	"config": {"port": 8080, "nested": {"a": [1, 2]}},
	"pnpm": {"overrides": {"semver": "7.5.4"}, "neverBuiltDependencies": ["fsevents"]},
	"publishConfig": {"access": "public"},
	"workspaces": ["packages/*"]
}`

func TestParse_Manifest(t *testing.T) {
	m, err := ParseString(sampleManifest)
	require.NoError(t, err)

	require.NotNil(t, m.Name)
	assert.Equal(t, "@acme/widgets", *m.Name)
	assert.Equal(t, []string{"ui", "widgets"}, m.Keywords)
	assert.Nil(t, m.Homepage)

	require.NotNil(t, m.Bugs)
	assert.Equal(t, "https://github.com/acme/widgets/issues", m.Bugs.URL)
	assert.Nil(t, m.Bugs.Full)

	require.NotNil(t, m.Author)
	assert.True(t, m.Author.IsShorthand())

	require.Len(t, m.Contributors, 2)
	require.NotNil(t, m.Contributors[0].Full)
	assert.Equal(t, ptr("Sam Roe"), m.Contributors[0].Full.Name)
	assert.Equal(t, []string{"twitter"}, m.Contributors[0].Full.Extras.Keys())
	assert.Equal(t, "Alex Poe", m.Contributors[1].Short)

	require.NotNil(t, m.Bin)
	assert.Equal(t, map[string]string{"widgets": "bin/widgets.js"}, m.Bin.Resolve(*m.Name))

	require.NotNil(t, m.Man)
	assert.Equal(t, []string{"man/widgets.1", "man/widgets.5"}, m.Man.Pages())

	require.NotNil(t, m.Repository)
	require.NotNil(t, m.Repository.Full)
	require.NotNil(t, m.Repository.Full.Directory)
	assert.Equal(t, "packages/widgets", *m.Repository.Full.Directory)

	assert.Equal(t, map[string]string{"test": "vitest", "build": "tsc -b"}, m.Scripts)
	assert.Equal(t, 3, m.DependencyCount())
	assert.Equal(t, map[string]string{"node": ">=18"}, m.Engines)
	assert.Nil(t, m.CPU)

	require.NotNil(t, m.Private)
	assert.False(t, *m.Private)

	assert.JSONEq(t, `{"port": 8080, "nested": {"a": [1, 2]}}`, string(m.Config))

	require.NotNil(t, m.Pnpm)
	assert.Equal(t, map[string]string{"semver": "7.5.4"}, m.Pnpm.Overrides)
	assert.Equal(t, []string{"neverBuiltDependencies"}, m.Pnpm.Extras.Keys())
	assert.False(t, m.Pnpm.IsEmpty())

	assert.Equal(t, []string{"type", "publishConfig", "workspaces"}, m.Extras.Keys())
}

func TestParse_Author(t *testing.T) {
	m, err := ParseString(`{"author": "Jane Doe <jane@doe.dev>"}`)
	require.NoError(t, err)
	require.NotNil(t, m.Author)
	assert.True(t, m.Author.IsShorthand())
	assert.Equal(t, "Jane Doe <jane@doe.dev>", m.Author.Short)

	m, err = ParseString(`{"author": {"name": "Jane Doe"}}`)
	require.NoError(t, err)
	require.NotNil(t, m.Author)
	assert.False(t, m.Author.IsShorthand())
	assert.Equal(t, ptr("Jane Doe"), m.Author.Full.Name)
	assert.Nil(t, m.Author.Full.Email)

	_, err = ParseString(`{"author": 42}`)
	var parseErr *shape.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)
	assert.Equal(t, shape.Path("author"), parseErr.Path)
	assert.Equal(t, []shape.Kind{shape.String, shape.Object}, parseErr.Expected)
	assert.Equal(t, shape.Number, parseErr.Actual)
}

func TestPersonReference_Person(t *testing.T) {
	email := "jane@doe.dev"
	url := "https://doe.dev"

	tests := []struct {
		name     string
		ref      PersonReference
		expected Person
	}{
		{"full shorthand", PersonReference{Short: "Jane Doe <jane@doe.dev> (https://doe.dev)"}, Person{Name: ptr("Jane Doe"), Email: &email, URL: &url}},
		{"name and email", PersonReference{Short: "Jane Doe <jane@doe.dev>"}, Person{Name: ptr("Jane Doe"), Email: &email}},
		{"name and url", PersonReference{Short: "Jane Doe (https://doe.dev)"}, Person{Name: ptr("Jane Doe"), URL: &url}},
		{"name only", PersonReference{Short: "  Jane Doe "}, Person{Name: ptr("Jane Doe")}},
		{"unusual layout", PersonReference{Short: "(https://doe.dev) Jane"}, Person{Name: ptr("(https://doe.dev) Jane")}},
		{"object", PersonRef(Person{Name: ptr("Sam")}), Person{Name: ptr("Sam")}},
		{"email only", PersonReference{Short: "<jane@doe.dev>"}, Person{Name: ptr(""), Email: &email}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Person())
		})
	}

	assert.Equal(t, "Jane Doe <jane@doe.dev> (https://doe.dev)", Person{Name: ptr("Jane Doe"), Email: &email, URL: &url}.String())
	assert.Equal(t, "<jane@doe.dev>", Person{Email: &email}.String())
}

func TestParse_Repository(t *testing.T) {
	m, err := ParseString(`{"repository": "github:user/repo"}`)
	require.NoError(t, err)
	require.NotNil(t, m.Repository)
	assert.True(t, m.Repository.IsShorthand())
	assert.Equal(t, "github:user/repo", m.Repository.Short)

	m, err = ParseString(`{"repository": {"type": "git", "url": "https://example.com/repo.git"}}`)
	require.NoError(t, err)
	require.NotNil(t, m.Repository.Full)
	assert.Equal(t, ptr("git"), m.Repository.Full.Type)
	assert.Equal(t, ptr("https://example.com/repo.git"), m.Repository.Full.URL)

	_, err = ParseString(`{"repository": ["a"]}`)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)
}

func TestRepositoryReference_Repository(t *testing.T) {
	tests := []struct {
		short string
		url   string
	}{
		{"github:user/repo", "https://github.com/user/repo.git"},
		{"gitlab:user/repo", "https://gitlab.com/user/repo.git"},
		{"bitbucket:user/repo", "https://bitbucket.org/user/repo.git"},
		{"gist:11081aaa281", "https://gist.github.com/11081aaa281.git"},
		{"user/repo", "https://github.com/user/repo.git"},
		{"user/repo.git", "https://github.com/user/repo.git"},
		{"https://example.com/repo.git", "https://example.com/repo.git"},
		{"git+ssh://git@example.com/repo.git", "git+ssh://git@example.com/repo.git"},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			repo := RepositoryReference{Short: tt.short}.Repository()
			require.NotNil(t, repo.Type)
			require.NotNil(t, repo.URL)
			assert.Equal(t, "git", *repo.Type)
			assert.Equal(t, tt.url, *repo.URL)
		})
	}
}

func TestParse_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  shape.Path
	}{
		{"name", `{"name": 1}`, "name"},
		{"keywords", `{"keywords": "ui"}`, "keywords"},
		{"keyword entry", `{"keywords": ["ui", 2]}`, "keywords[1]"},
		{"contributor", `{"contributors": ["a", true]}`, "contributors[1]"},
		{"contributor name", `{"contributors": [{"name": []}]}`, "contributors[0].name"},
		{"man", `{"man": {"page": "x"}}`, "man"},
		{"scripts", `{"scripts": ["test"]}`, "scripts"},
		{"dependency range", `{"dependencies": {"left-pad": 1}}`, "dependencies.left-pad"},
		{"private", `{"private": "yes"}`, "private"},
		{"bundled", `{"bundledDependencies": "all"}`, "bundledDependencies"},
		{"pnpm overrides", `{"pnpm": {"overrides": []}}`, "pnpm.overrides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			var parseErr *shape.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, shape.ErrorTypeShapeMismatch, parseErr.Type)
			assert.Equal(t, tt.path, parseErr.Path)
		})
	}
}

func TestParse_DocumentErrors(t *testing.T) {
	_, err := ParseString(`"just a string"`)
	assert.ErrorIs(t, err, shape.ErrNotAnObject)

	_, err = ParseString(`{"name": "x",}`)
	assert.ErrorIs(t, err, shape.ErrMalformedJSON)

	_, err = Parse(nil)
	assert.ErrorIs(t, err, shape.ErrEmptyInput)
}

func TestParse_NullIsAbsent(t *testing.T) {
	m, err := ParseString(`{"name": null, "author": null, "config": null, "keywords": null}`)
	require.NoError(t, err)
	assert.Nil(t, m.Name)
	assert.Nil(t, m.Author)
	assert.Nil(t, m.Config)
	assert.Nil(t, m.Keywords)
	assert.Zero(t, m.Extras.Len())

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	m, err = ParseString(`{"author": {"name": null, "email": "a@b"}, "repository": {"type": null, "url": null, "directory": "pkg"}}`)
	require.NoError(t, err)
	require.NotNil(t, m.Author)
	require.NotNil(t, m.Author.Full)
	assert.Nil(t, m.Author.Full.Name)
	assert.Equal(t, ptr("a@b"), m.Author.Full.Email)
	require.NotNil(t, m.Repository.Full)
	assert.Nil(t, m.Repository.Full.Type)
	assert.Nil(t, m.Repository.Full.URL)

	out, err = m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"author":{"email":"a@b"},"repository":{"directory":"pkg"}}`, string(out))
}

func TestRoundTrip_NestedScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty person name", `{"author":{"name":""}}`},
		{"person without name", `{"contributors":[{"email":"a@b"}]}`},
		{"empty repository url", `{"repository":{"type":"git","url":""}}`},
		{"repository without type", `{"repository":{"url":"https://example.com/r.git"}}`},
		{"empty bug url", `{"bugs":{"url":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseString(tt.input)
			require.NoError(t, err)
			out, err := m.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(out))
		})
	}
}

func TestMarshal_ExtrasFillUnsetField(t *testing.T) {
	m := &Manifest{}
	m.Extras.Set("name", json.RawMessage(`"from-extras"`))

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"from-extras"}`, string(out))

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, ptr("from-extras"), back.Name)
	assert.Zero(t, back.Extras.Len())
}

func TestParse_FlexibleFields(t *testing.T) {
	m, err := ParseString(`{
		"bugs": {"url": "https://example.com/issues", "email": "bugs@example.com"},
		"bin": {"a": "bin/a.js", "b": "bin/b.js"},
		"man": "man/a.1",
		"bundledDependencies": ["left-pad"]
	}`)
	require.NoError(t, err)

	require.NotNil(t, m.Bugs.Full)
	assert.Equal(t, "bugs@example.com", *m.Bugs.Full.Email)
	assert.Equal(t, "https://example.com/issues", *m.Bugs.Bug().URL)

	assert.True(t, m.Bin.IsMap())
	assert.Equal(t, map[string]string{"a": "bin/a.js", "b": "bin/b.js"}, m.Bin.Resolve("ignored"))

	assert.False(t, m.Man.IsList())
	assert.Equal(t, []string{"man/a.1"}, m.Man.Pages())

	assert.Equal(t, []string{"left-pad"}, m.BundledDependencies.Packages())

	m, err = ParseString(`{"bundledDependencies": {"b": "1", "a": "2"}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.BundledDependencies.Packages())

	m, err = ParseString(`{"bundledDependencies": true}`)
	require.NoError(t, err)
	require.NotNil(t, m.BundledDependencies.Bool)
	assert.Nil(t, m.BundledDependencies.Packages())
}

func TestMarshal_Private(t *testing.T) {
	m, err := ParseString(`{"name": "x"}`)
	require.NoError(t, err)
	out, err := m.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"private"`)

	m, err = ParseString(`{"name": "x", "private": false}`)
	require.NoError(t, err)
	out, err = m.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"private":false`)
}

func TestMarshal_RoundTrip(t *testing.T) {
	first, err := ParseString(sampleManifest)
	require.NoError(t, err)

	out, err := first.Marshal()
	require.NoError(t, err)

	second, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Extras.Keys(), second.Extras.Keys())

	again, err := second.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))

	assert.Contains(t, string(out), `"description":"Widgets & gadgets"`)
	assert.JSONEq(t, sampleManifest, string(out))
}

func TestMarshal_Layout(t *testing.T) {
	name := "demo"
	private := true
	m := &Manifest{
		Name:    &name,
		Author:  &PersonReference{Short: "Jane"},
		Scripts: map[string]string{"test": "go test", "build": "go build"},
		Private: &private,
		Files:   []string{},
	}
	m.Extras.Set("workspaces", json.RawMessage(`[ "a" ]`))
	m.Extras.Set("name", json.RawMessage(`"shadow"`))

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"demo","author":"Jane","scripts":{"build":"go build","test":"go test"},"private":true,"workspaces":["a"]}`,
		string(out))
}

func TestMarshalIndent(t *testing.T) {
	m, err := ParseString(`{"name":"x","os":["linux"]}`)
	require.NoError(t, err)
	out, err := m.MarshalIndent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"x\",\n  \"os\": [\n    \"linux\"\n  ]\n}", string(out))
}

func TestFromValueAndToValue(t *testing.T) {
	m, err := FromValue(map[string]any{
		"name":    "x",
		"private": true,
		"extra":   []any{"a", 1},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Private)
	assert.True(t, *m.Private)
	assert.Equal(t, []string{"extra"}, m.Extras.Keys())

	v, err := m.ToValue()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":    "x",
		"private": true,
		"extra":   []any{"a", json.Number("1")},
	}, v)

	_, err = FromValue([]any{"x"})
	assert.ErrorIs(t, err, shape.ErrNotAnObject)
}

func TestStandardLibraryJSON(t *testing.T) {
	var m Manifest
	require.NoError(t, json.Unmarshal([]byte(`{"author": {"name": "A", "x": 1}, "y": true}`), &m))
	require.NotNil(t, m.Author)
	require.NotNil(t, m.Author.Full)
	assert.Equal(t, ptr("A"), m.Author.Full.Name)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"author":{"name":"A","x":1},"y":true}`, string(out))
}

func BenchmarkParse(b *testing.B) {
	data := []byte(sampleManifest)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	m, err := ParseString(sampleManifest)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		out, err := m.Marshal()
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Parse(out); err != nil {
			b.Fatal(err)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
