// Package main provides the argdoc CLI, which renders usage, version and
// error text for programs described in TOML files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	phuslog "github.com/phuslu/log"

	"github.com/toejough/argdoc/internal/config"
	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/help"
	"github.com/toejough/argdoc/internal/output"
)

// version is set with -ldflags "-X main.version=..." in release builds.
var version = ""

func main() {
	os.Exit(runMain())
}

func runMain() int {
	if len(os.Args) == 0 {
		fmt.Fprintln(os.Stderr, "error: os.Args is empty")
		return 1
	}

	r := &argdocRunner{
		binArg: os.Args[0],
		args:   os.Args[1:],
		out:    os.Stdout,
		errOut: os.Stderr,
		getenv: os.Getenv,
	}

	return r.run()
}

// unexported constants.
const (
	commandFail    = "fail"
	commandUsage   = "usage"
	commandVersion = "version"
	formatJSON     = "json"
	formatStyled   = "styled"
	formatText     = "text"
	logLevelEnv    = "ARGDOC_LOG_LEVEL"
)

// argdocRunner holds state for a single argdoc invocation.
type argdocRunner struct {
	binArg string
	args   []string
	out    io.Writer
	errOut io.Writer
	getenv func(string) string
}

// invocation is the parsed command line.
type invocation struct {
	format    string
	logLevel  string
	logFormat string
	help      bool
	version   bool
	command   string
	failID    string
	failMsg   string
	patterns  []string
}

func (r *argdocRunner) run() int {
	self, err := selfCmdLine(r.binArg)
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		return 1
	}

	std := output.NewStd(r.out, r.errOut)

	inv, argErr := parseArgs(r.args)
	if argErr != nil {
		return exitCode(std.Failure(self, argErr))
	}

	switch {
	case inv.help:
		return exitCode(std.Usage(self))
	case inv.version:
		return exitCode(std.Version(self))
	}

	if inv.logLevel == "" {
		inv.logLevel = r.getenv(logLevelEnv)
	}

	logger, argErr := newLogger(r.errOut, inv.logLevel, inv.logFormat)
	if argErr != nil {
		return exitCode(std.Failure(self, argErr))
	}

	renderer, argErr := newOutput(inv.format, r.out, r.errOut)
	if argErr != nil {
		return exitCode(std.Failure(self, argErr))
	}

	programs, err := config.LoadAll(logger, inv.patterns...)
	if err != nil {
		logger.Error("loading program descriptions", "error", err)
		fmt.Fprintf(r.errOut, "error: %v\n", err)

		return 1
	}

	code := 0

	for _, p := range programs {
		logger.Debug("rendering", "program", p.Name, "source", p.Source, "command", inv.command)

		if c := r.render(logger, renderer, p, inv); c != 0 {
			code = c
		}
	}

	return code
}

func (r *argdocRunner) render(logger *slog.Logger, renderer output.Output, p *config.Program, inv invocation) int {
	c, err := p.CmdLine()
	if err != nil {
		logger.Error("building registry", "program", p.Name, "source", p.Source, "error", err)
		fmt.Fprintf(r.errOut, "error: %s: %v\n", p.Source, err)

		return 1
	}

	switch inv.command {
	case commandUsage:
		err = renderer.Usage(c)
	case commandVersion:
		err = renderer.Version(c)
	case commandFail:
		err = renderer.Failure(c, core.NewArgError(inv.failID, inv.failMsg))
	}

	return exitCode(err)
}

// buildVersion reports the version stamped at link time, or the module
// version recorded in the binary.
func buildVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

// exitCode maps a render result to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr core.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, *core.ArgError) {
	lvl := slog.LevelWarn

	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, core.NewArgError("--log-level", fmt.Sprintf("unknown log level %q", level))
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "", formatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case formatJSON:
		return slog.New(phuslog.SlogNewJSONHandler(w, opts)), nil
	default:
		return nil, core.NewArgError("--log-format", fmt.Sprintf("unknown log format %q", format))
	}
}

func newOutput(format string, out, errOut io.Writer) (output.Output, *core.ArgError) {
	switch format {
	case "", formatText:
		return output.NewStd(out, errOut), nil
	case formatStyled:
		return output.NewStyled(out, errOut, help.DefaultStyles()), nil
	case formatJSON:
		return output.NewJSON(out, errOut), nil
	default:
		return nil, core.NewArgError("--format", fmt.Sprintf("unknown format %q", format))
	}
}

// parseArgs splits args into options, the command and the patterns.
// Options must come before the command.
func parseArgs(args []string) (invocation, *core.ArgError) {
	var inv invocation

	rest, argErr := parseOptions(&inv, args)
	if argErr != nil || inv.help || inv.version {
		return inv, argErr
	}

	if len(rest) == 0 {
		return inv, core.NewArgError("<command>", "Missing a required argument")
	}

	inv.command, rest = rest[0], rest[1:]

	switch inv.command {
	case commandUsage, commandVersion:
	case commandFail:
		if len(rest) < 2 {
			return inv, core.NewArgError("<command>", "fail needs an argument ID and a message")
		}

		inv.failID, inv.failMsg, rest = rest[0], rest[1], rest[2:]
	default:
		return inv, core.NewArgError("<command>", fmt.Sprintf("unknown command %q", inv.command))
	}

	if len(rest) == 0 {
		return inv, core.NewArgError("<pattern>", "Missing a required argument")
	}

	inv.patterns = rest

	return inv, nil
}

// parseOptions consumes leading options and returns what is left.
func parseOptions(inv *invocation, args []string) ([]string, *core.ArgError) {
	for len(args) > 0 {
		arg := args[0]

		if arg == "--" || arg == "--ignore_rest" {
			return args[1:], nil
		}

		if !strings.HasPrefix(arg, "-") {
			return args, nil
		}

		args = args[1:]

		switch arg {
		case "-h", "--help":
			inv.help = true
			return args, nil
		case "--version":
			inv.version = true
			return args, nil
		}

		name, value, hasValue := strings.Cut(arg, "=")

		var target *string

		switch name {
		case "-o", "--format":
			target = &inv.format
		case "-l", "--log-level":
			target = &inv.logLevel
		case "-L", "--log-format":
			target = &inv.logFormat
		default:
			return nil, core.NewArgError(name, "Unknown option")
		}

		if !hasValue {
			if len(args) == 0 {
				return nil, core.NewArgError(name, "Missing a value for this option")
			}

			value, args = args[0], args[1:]
		}

		*target = value
	}

	return args, nil
}

// selfCmdLine describes argdoc's own command line, so its usage and errors
// are rendered the same way as the programs it documents.
func selfCmdLine(binArg string) (*core.CmdLine, error) {
	c := core.NewCmdLine(
		"Renders usage, version and error text for the programs described in "+
			"TOML files matched by the given patterns. Patterns may use ** and {a,b}.",
		buildVersion(),
		true,
	)
	c.SetProgramName("argdoc")
	c.SetProgramPath(binArg)
	c.SetAuthor("the argdoc authors")

	specs := []core.ArgSpec{
		{Flag: "o", Name: "format", ValueID: "text|styled|json", Desc: "Output format. Defaults to text."},
		{Flag: "l", Name: "log-level", ValueID: "level", Desc: "Log level: debug, info, warn or error. Defaults to $" + logLevelEnv + ", then warn."},
		{Flag: "L", Name: "log-format", ValueID: "text|json", Desc: "Log format. Defaults to text."},
		{
			Name: "command", Positional: true, Required: true, ValueID: "command",
			Desc: "One of usage, version, or fail followed by an argument ID and a message.",
		},
		{
			Name: "pattern", Positional: true, Required: true, ValueID: "pattern",
			Desc: "Program description files to render.",
		},
	}

	for _, spec := range specs {
		a, err := core.NewArg(spec)
		if err != nil {
			return nil, err
		}

		if err := c.Add(a); err != nil {
			return nil, err
		}
	}

	return c, nil
}
