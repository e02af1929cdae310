package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mcncl/jsconf/internal/errors"
	"github.com/mcncl/jsconf/internal/formatter"
	"github.com/mcncl/jsconf/internal/models"
	"github.com/mcncl/jsconf/internal/parser"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const stdinName = "-"

// Destination selects where a rewritten document goes
type Destination struct {
	Output  string `help:"Write the result to this file instead of stdout." short:"o"`
	Write   bool   `help:"Rewrite the input file in place." short:"w"`
	Compact bool   `help:"Print compact JSON."`
}

func (d Destination) target(file string) (string, error) {
	if !d.Write {
		return d.Output, nil
	}
	if file == "" || file == stdinName {
		return "", errors.NewUsageError("--write needs a file argument", errors.ErrInvalidFilePath)
	}
	return file, nil
}

// FmtCmd rewrites a document in the model's canonical layout
type FmtCmd struct {
	File string `arg:"" optional:"" help:"Document to read. Reads stdin when omitted or '-'."`
	Destination
}

func (cmd *FmtCmd) Run(ctx *Context) error {
	doc, err := ctx.load(cmd.File)
	if err != nil {
		return err
	}
	return ctx.save(doc, cmd.File, cmd.Destination)
}

// GetCmd prints one value
type GetCmd struct {
	File string `arg:"" help:"Document to read, or '-' for stdin."`
	Path string `arg:"" help:"Dotted path, e.g. compilerOptions.target or dev_dependencies.typescript."`
	JSON bool   `help:"Print strings as JSON instead of raw text."`
}

func (cmd *GetCmd) Run(ctx *Context) error {
	doc, err := ctx.load(cmd.File)
	if err != nil {
		return err
	}
	data, err := doc.Marshal()
	if err != nil {
		return errors.NewOutputError("failed to serialize document", err)
	}

	path := ctx.Config.FieldPath(cmd.Path, doc.Kind)
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return errors.NewUsageError(fmt.Sprintf("path '%s' not found", path), errors.ErrPathNotFound)
	}
	ctx.Log.WithFields(log.Fields{"path": path, "type": result.Type.String()}).Debug("resolved path")

	if result.Type == gjson.String && !cmd.JSON {
		return ctx.print([]byte(result.String() + "\n"))
	}
	out, err := formatter.NewFormatter(ctx.Output).Format([]byte(result.Raw))
	if err != nil {
		return errors.NewOutputError("failed to format value", err)
	}
	return ctx.print(out)
}

// SetCmd changes one value
type SetCmd struct {
	File  string `arg:"" help:"Document to read, or '-' for stdin."`
	Path  string `arg:"" help:"Dotted path to set."`
	Value string `arg:"" help:"New value. Taken as a string unless --json is given."`
	JSON  bool   `help:"Parse VALUE as JSON."`
	Destination
}

func (cmd *SetCmd) Run(ctx *Context) error {
	return ctx.edit(cmd.File, cmd.Path, cmd.Destination, func(data []byte, path string) ([]byte, error) {
		if !cmd.JSON {
			return sjson.SetBytes(data, path, cmd.Value)
		}
		if !gjson.Valid(cmd.Value) {
			return nil, fmt.Errorf("value is not valid JSON: %s", cmd.Value)
		}
		return sjson.SetRawBytes(data, path, []byte(cmd.Value))
	})
}

// DelCmd removes one value
type DelCmd struct {
	File string `arg:"" help:"Document to read, or '-' for stdin."`
	Path string `arg:"" help:"Dotted path to delete."`
	Destination
}

func (cmd *DelCmd) Run(ctx *Context) error {
	return ctx.edit(cmd.File, cmd.Path, cmd.Destination, func(data []byte, path string) ([]byte, error) {
		if !gjson.GetBytes(data, path).Exists() {
			return nil, errors.ErrPathNotFound
		}
		return sjson.DeleteBytes(data, path)
	})
}

// DumpCmd prints the typed model
type DumpCmd struct {
	File string `arg:"" optional:"" help:"Document to read. Reads stdin when omitted or '-'."`
}

func (cmd *DumpCmd) Run(ctx *Context) error {
	doc, err := ctx.load(cmd.File)
	if err != nil {
		return err
	}
	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	dumper.Fdump(ctx.Stdout, doc.Model())
	return nil
}

// VersionCmd prints the version
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "jsconf version %s\n", Version)
	return err
}

// load reads a document from a file or stdin
func (c *Context) load(file string) (*models.Document, error) {
	kind := c.Config.DetectKind(file)

	var doc *models.Document
	var err error
	if file == "" || file == stdinName {
		c.Log.Debug("reading document from stdin")
		doc, err = parser.Parse(c.Stdin, kind)
		if doc != nil {
			doc.Source = "<stdin>"
		}
	} else {
		doc, err = parser.ParseFile(file, kind)
	}
	if err != nil {
		return nil, err
	}

	c.Log.WithFields(log.Fields{
		"source":       doc.Source,
		"kind":         doc.Kind,
		"unknown_keys": len(doc.UnknownKeys()),
	}).Debug("parsed document")
	if keys := doc.UnknownKeys(); len(keys) > 0 {
		c.Log.WithField("keys", keys).Info("kept keys the model does not interpret")
	}
	return doc, nil
}

// edit serializes doc, applies change at path and parses the result again
// so that the edit has to fit the model
func (c *Context) edit(file, rawPath string, dest Destination, change func(data []byte, path string) ([]byte, error)) error {
	doc, err := c.load(file)
	if err != nil {
		return err
	}
	data, err := doc.Marshal()
	if err != nil {
		return errors.NewOutputError("failed to serialize document", err)
	}

	path := c.Config.FieldPath(rawPath, doc.Kind)
	data, err = change(data, path)
	if err != nil {
		return errors.NewUsageError(fmt.Sprintf("cannot change path '%s'", path), err)
	}

	updated, err := parser.ParseBytes(data, doc.Kind)
	if err != nil {
		return err
	}
	updated.Source = doc.Source
	c.Log.WithField("path", path).Debug("applied edit")
	return c.save(updated, file, dest)
}

// save writes a document to the destination
func (c *Context) save(doc *models.Document, file string, dest Destination) error {
	target, err := dest.target(file)
	if err != nil {
		return err
	}
	data, err := doc.Marshal()
	if err != nil {
		return errors.NewOutputError("failed to serialize document", err)
	}

	opts := c.Output
	if dest.Compact {
		opts.Compact = true
	}
	if target != "" {
		opts.Color = false
	}
	out, err := formatter.NewFormatter(opts).Format(data)
	if err != nil {
		return errors.NewOutputError("failed to format document", err)
	}

	if target == "" {
		return c.print(out)
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", target), err)
	}
	c.Log.WithField("file", target).Info("document written")
	return nil
}

func (c *Context) print(out []byte) error {
	if _, err := c.Stdout.Write(out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
