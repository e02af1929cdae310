package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = "../../testdata/samples"

// runCLI runs jsconf through go run and fails the test on a non-zero exit
func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../.."}, args...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "CLI command failed: %s", stderr.String())
	return stdout.String()
}

// copySample copies a sample document into a temp dir so it can be edited
func copySample(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(samples, name))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// TestEndToEnd_RealWorldManifest runs a published-style package.json through the CLI
func TestEndToEnd_RealWorldManifest(t *testing.T) {
	path := copySample(t, "package.json")

	formatted := runCLI(t, "", "fmt", path)

	// Modeled fields keep their shapes
	assert.Contains(t, formatted, `"author": "Jane Doe <jane@example.com> (https://jane.example.com)"`)
	assert.Contains(t, formatted, `"bugs": "https://github.com/acme/widgets/issues"`)
	assert.Contains(t, formatted, `"bundledDependencies": ["left-pad"]`)
	assert.Contains(t, formatted, `"private": false`)
	assert.Contains(t, formatted, `"Kit Poe"`)

	// Unknown keys survive, including unknown keys inside pnpm
	assert.Contains(t, formatted, `"type": "module"`)
	assert.Contains(t, formatted, `"packageManager": "pnpm@9.1.0"`)
	assert.Contains(t, formatted, `"neverBuiltDependencies": ["fsevents"]`)
	assert.Contains(t, formatted, `"types": "./dist/index.d.ts"`)

	// Scripts come out sorted
	assert.Less(t, strings.Index(formatted, `"build"`), strings.Index(formatted, `"test"`))

	// Formatting is idempotent
	require.NoError(t, os.WriteFile(path, []byte(formatted), 0644))
	assert.Equal(t, formatted, runCLI(t, "", "fmt", path))

	queries := []struct {
		path     string
		expected string
	}{
		{"name", "@acme/widgets\n"},
		{"bin.widgets", "./bin/widgets.js\n"},
		{"repository.directory", "packages/widgets\n"},
		{"dev_dependencies.vitest", "^1.6.0\n"},
		{"pnpm.overrides.semver", "7.5.4\n"},
		{"pnpm.neverBuiltDependencies.0", "fsevents\n"},
		{"private", "false\n"},
	}
	for _, q := range queries {
		t.Run(q.path, func(t *testing.T) {
			assert.Equal(t, q.expected, runCLI(t, "", "get", path, q.path))
		})
	}
}

// TestEndToEnd_RealWorldProjectConfig runs a typical tsconfig.json and its base through the CLI
func TestEndToEnd_RealWorldProjectConfig(t *testing.T) {
	path := copySample(t, "tsconfig.json")

	formatted := runCLI(t, "", "fmt", path)
	assert.Contains(t, formatted, `"$schema": "https://json.schemastore.org/tsconfig"`)
	assert.Contains(t, formatted, `"lib": ["ES2022", "DOM", "DOM.Iterable"]`)
	assert.Contains(t, formatted, `"jsx": "react-jsx"`)
	assert.Contains(t, formatted, `"@/*": ["./src/*"]`)
	assert.Less(t, strings.Index(formatted, `"extends"`), strings.Index(formatted, `"compilerOptions"`))

	assert.Equal(t, "NodeNext\n", runCLI(t, "", "get", path, "compiler_options.module_resolution"))
	assert.Equal(t, "../core\n", runCLI(t, "", "get", path, "references.0.path"))
	assert.Equal(t, "true\n", runCLI(t, "", "get", path, "compilerOptions.verbatimModuleSyntax"))

	base := copySample(t, "tsconfig.base.json")
	assert.Equal(t, "useFsEvents\n", runCLI(t, "", "get", base, "watch_options.watch_file"))
	assert.Equal(t, "lf\n", runCLI(t, "", "get", base, "compilerOptions.newLine"))

	// Edits go through the model and come back in model order
	runCLI(t, "", "set", "-w", base, "compilerOptions.lib", `["esnext"]`, "--json")
	edited, err := os.ReadFile(base)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(edited), `"lib"`), strings.Index(string(edited), `"target"`))
	assert.Contains(t, string(edited), `"lib": ["esnext"]`)
}

// TestEndToEnd_EdgeCases tests various edge cases
func TestEndToEnd_EdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		kind     string
		json     string
		expected string
		isError  bool
	}{
		{
			name:     "EmptyManifest",
			kind:     "package",
			json:     `{}`,
			expected: "{}",
		},
		{
			name:     "EmptyProjectConfig",
			kind:     "tsconfig",
			json:     `{}`,
			expected: "{}",
		},
		{
			name:     "NullIsAbsent",
			kind:     "package",
			json:     `{"name": null, "author": null, "scripts": null}`,
			expected: "{}",
		},
		{
			name:     "EmptyCollectionsAreDropped",
			kind:     "package",
			json:     `{"keywords": [], "dependencies": {}}`,
			expected: "{}",
		},
		{
			name:     "EmptyReferencesAreKept",
			kind:     "tsconfig",
			json:     `{"references": []}`,
			expected: `{"references":[]}`,
		},
		{
			name:     "BooleanReferences",
			kind:     "tsconfig",
			json:     `{"references": true}`,
			expected: `{"references":true}`,
		},
		{
			name:     "UnknownEnumValue",
			kind:     "tsconfig",
			json:     `{"compilerOptions": {"target": "es2099", "module": "Preserve2"}}`,
			expected: `{"compilerOptions":{"module":"Preserve2","target":"es2099"}}`,
		},
		{
			name:     "UnicodeAndEscapes",
			kind:     "package",
			json:     `{"description": "<b>grün</b> & more"}`,
			expected: `{"description":"<b>grün</b> & more"}`,
		},
		{
			name:    "Array",
			kind:    "package",
			json:    `[]`,
			isError: true,
		},
		{
			name:    "SingleValue",
			kind:    "tsconfig",
			json:    `"just a string"`,
			isError: true,
		},
		{
			name:    "InvalidJSON",
			kind:    "package",
			json:    `{"name": "Invalid JSON",}`,
			isError: true,
		},
		{
			name:    "WrongShape",
			kind:    "package",
			json:    `{"keywords": "ui"}`,
			isError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command("go", "run", "../..", "fmt", "--compact", "--kind", tc.kind)
			cmd.Stdin = strings.NewReader(tc.json)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			if tc.isError {
				assert.Error(t, err, "Expected an error for %s", tc.name)
				assert.NotEmpty(t, stderr.String())
				return
			}
			require.NoError(t, err, "Unexpected error for %s: %s", tc.name, stderr.String())
			assert.Equal(t, tc.expected+"\n", stdout.String())
		})
	}
}
