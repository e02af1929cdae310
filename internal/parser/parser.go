package parser

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/jsconf/internal/errors"
	"github.com/mcncl/jsconf/internal/models"
	"github.com/mcncl/jsconf/pkg/manifest"
	"github.com/mcncl/jsconf/pkg/shape"
	"github.com/mcncl/jsconf/pkg/tsconfig"
	"github.com/tidwall/gjson"
)

// Top-level keys that only one of the two formats uses. Keys both formats
// share, like "files", are left out.
var (
	manifestKeys = []string{
		"name", "version", "description", "main", "scripts", "dependencies",
		"devDependencies", "peerDependencies", "author", "license", "private",
		"repository", "engines", "bin",
	}
	projectConfigKeys = []string{
		"compilerOptions", "extends", "references", "include", "exclude",
		"compileOnSave", "typeAcquisition", "watchOptions",
	}
)

// DetectKind guesses the document kind from its top-level keys. It returns
// KindUnknown when the input is not a JSON object or the keys do not favor
// either format.
func DetectKind(data []byte) models.DocumentKind {
	if !gjson.ValidBytes(data) {
		return models.KindUnknown
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return models.KindUnknown
	}

	count := func(keys []string) int {
		n := 0
		for _, key := range keys {
			if root.Get(key).Exists() {
				n++
			}
		}
		return n
	}
	manifestScore, projectScore := count(manifestKeys), count(projectConfigKeys)
	switch {
	case manifestScore > projectScore:
		return models.KindManifest
	case projectScore > manifestScore:
		return models.KindProjectConfig
	}
	return models.KindUnknown
}

// Parse reads a document of the given kind from reader. KindUnknown detects
// the kind from the content.
func Parse(reader io.Reader, kind models.DocumentKind) (*models.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data, kind)
}

// ParseBytes reads a document of the given kind from data
func ParseBytes(data []byte, kind models.DocumentKind) (*models.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	if kind == models.KindUnknown {
		// Report syntax problems before the kind is guessed
		if _, err := shape.ParseObject(data); err != nil {
			return nil, wrapParseError(err)
		}
		kind = DetectKind(data)
		if kind == models.KindUnknown {
			return nil, errors.NewParsingError(
				"could not tell whether the input is a package.json or a tsconfig.json, please pass --kind",
				errors.ErrUnknownKind,
			)
		}
	}

	doc := &models.Document{Kind: kind}
	var err error
	switch kind {
	case models.KindManifest:
		doc.Manifest, err = manifest.Parse(data)
	case models.KindProjectConfig:
		doc.ProjectConfig, err = tsconfig.Parse(data)
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unsupported document kind %q", kind), errors.ErrUnknownKind)
	}
	if err != nil {
		return nil, wrapParseError(err)
	}
	return doc, nil
}

func wrapParseError(err error) error {
	var parseErr *shape.ParseError
	if !stderrors.As(err, &parseErr) {
		return errors.NewParsingError("failed to decode document", err)
	}
	switch parseErr.Type {
	case shape.ErrorTypeShapeMismatch:
		return errors.NewParsingError(fmt.Sprintf("field '%s' has an unexpected shape", parseErr.Path), err)
	case shape.ErrorTypeNotAnObject:
		return errors.NewParsingError(fmt.Sprintf("document must be a JSON object, got %s", parseErr.Actual), err)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset), err)
	}
	return errors.NewParsingError("invalid JSON", err)
}

// ParseString parses a document from a string
func ParseString(s string, kind models.DocumentKind) (*models.Document, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(s), kind)
}

// ParseFile parses a document from a file path
func ParseFile(filePath string, kind models.DocumentKind) (*models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	doc, err := Parse(file, kind)
	if err != nil {
		return nil, err
	}
	doc.Source = filePath
	return doc, nil
}
