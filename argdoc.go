// Package argdoc renders usage summaries, option listings, version banners
// and argument errors for a command line, wrapped to an 80-column terminal.
//
// Build a CmdLine, register arguments and exclusive groups on it, then hand
// it to an Output:
//
//	c := argdoc.NewCmdLine("Copies files.", "1.0", true)
//	src, _ := argdoc.NewArg(argdoc.ArgSpec{Flag: "s", Name: "src", ValueID: "path", Required: true})
//	_ = c.Add(src)
//	_ = argdoc.NewStd(os.Stdout, os.Stderr).Usage(c)
package argdoc

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/toejough/argdoc/internal/config"
	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/help"
	"github.com/toejough/argdoc/internal/output"
)

// --- Re-exported types ---

// Arg is a registered command-line argument.
type Arg = core.Arg

// ArgSpec describes an argument for NewArg.
type ArgSpec = core.ArgSpec

// ArgError is a problem with a specific argument, rendered by Output.Failure.
type ArgError = core.ArgError

// CmdLine is the argument registry and exclusive-group tracker.
type CmdLine = core.CmdLine

// ExitError is returned by Output.Failure with the status to exit with.
type ExitError = core.ExitError

// Output renders usage, version and failure text.
type Output = output.Output

// Program is a program description loaded from TOML.
type Program = config.Program

// Styles holds the lipgloss styles used by NewStyled.
type Styles = help.Styles

// Re-exported errors.
var (
	ErrAlreadyGrouped = core.ErrAlreadyGrouped
	ErrBadIdentifier  = core.ErrBadIdentifier
	ErrDuplicateArg   = core.ErrDuplicateArg
	ErrEmptyGroup     = core.ErrEmptyGroup
	ErrNilArg         = core.ErrNilArg
	ErrNoName         = core.ErrNoName
)

// --- Public API ---

// DefaultStyles returns the styles NewStyled uses by default.
func DefaultStyles() Styles {
	return help.DefaultStyles()
}

// Exit terminates the process for err: nil exits 0, an ExitError exits with
// its code, anything else exits 1.
func Exit(err error) {
	os.Exit(ExitCode(err))
}

// ExitCode returns the status Exit would use for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

// LoadProgram reads and validates the TOML description at path.
func LoadProgram(path string) (*Program, error) {
	return config.Load(path, discardLogger())
}

// NewArg validates spec and returns the argument it describes.
func NewArg(spec ArgSpec) (*Arg, error) {
	return core.NewArg(spec)
}

// NewArgError returns an ArgError for the argument id.
func NewArgError(id, message string) *ArgError {
	return core.NewArgError(id, message)
}

// NewCmdLine returns an empty registry. With helpAndVersion set, --help,
// --version and the -- terminator are listed after the user's arguments.
func NewCmdLine(message, version string, helpAndVersion bool) *CmdLine {
	return core.NewCmdLine(message, version, helpAndVersion)
}

// NewJSON returns an Output that writes JSON documents.
func NewJSON(out, errOut io.Writer) Output {
	return output.NewJSON(out, errOut)
}

// NewStd returns the plain-text Output.
func NewStd(out, errOut io.Writer) Output {
	return output.NewStd(out, errOut)
}

// NewStyled returns the plain-text Output with styled labels.
func NewStyled(out, errOut io.Writer, styles Styles) Output {
	return output.NewStyled(out, errOut, styles)
}

// ParseProgram decodes and validates a TOML description.
func ParseProgram(data []byte) (*Program, error) {
	return config.Parse(data)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
