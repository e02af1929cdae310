package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsconf/internal/config"
	"github.com/mcncl/jsconf/internal/errors"
	"github.com/mcncl/jsconf/internal/formatter"
	log "github.com/sirupsen/logrus"
)

// Globals are the flags shared by every command
type Globals struct {
	Config string `help:"Path to a config file. Searched for upward from the working directory when not set." short:"c"`
	Kind   string `help:"Document kind: package or tsconfig. Detected from the file name or content when not set." short:"k"`
	Debug  bool   `help:"Enable debug logging." short:"d"`
	Color  bool   `help:"Colorize JSON written to the terminal."`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Fmt     FmtCmd     `cmd:"" help:"Normalize a document through the typed model."`
	Get     GetCmd     `cmd:"" help:"Print the value at a path."`
	Set     SetCmd     `cmd:"" help:"Set the value at a path and check the result against the model."`
	Del     DelCmd     `cmd:"" help:"Delete the value at a path."`
	Dump    DumpCmd    `cmd:"" help:"Print the typed model of a document."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Log    *log.Logger
	Output formatter.Options
	Stdin  io.Reader
	Stdout io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

// exit carries a kong exit code out of Parse
type exit int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the program and returns its exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jsconf"),
		kong.Description("Read, normalize and edit package.json and tsconfig.json files"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exit(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exit)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		// Usage has already been shown by kong.UsageOnError()
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(errors.NewUsageError(err.Error(), err)))
		return 1
	}

	ctx, err := newContext(&cli.Globals, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		return 1
	}

	if err := kctx.Run(ctx); err != nil {
		ctx.Log.WithError(err).Debug("command failed")
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		return 1
	}
	return 0
}

// newContext loads the configuration and sets up logging
func newContext(globals *Globals, stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)

	configPath := globals.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, globals.Kind, globals.Debug)
	if err != nil {
		return nil, errors.NewConfigError(err.Error(), err)
	}

	switch {
	case cfg.Dev.Debug:
		logger.SetLevel(log.DebugLevel)
	case cfg.Dev.Verbose:
		logger.SetLevel(log.InfoLevel)
	}
	if configPath != "" {
		logger.WithField("path", configPath).Debug("loaded config file")
	}

	return &Context{
		Config: cfg,
		Log:    logger,
		Output: formatter.Options{
			Indent:          cfg.Output.Indent,
			Prefix:          cfg.Output.Prefix,
			Width:           cfg.Output.Width,
			SortKeys:        cfg.Output.SortKeys,
			Compact:         cfg.Output.Compact,
			Color:           globals.Color,
			TrailingNewline: cfg.Output.TrailingNewline,
		},
		Stdin:  stdin,
		Stdout: stdout,
	}, nil
}
