// Package output renders usage, version and failure text for a command line.
// Renderers read the registry through CmdLine and never modify it, so one
// registry can be shown by any Output implementation.
package output

import (
	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/help"
)

// CmdLine is the read view of an argument registry and its exclusive groups.
type CmdLine interface {
	ArgList() []help.Arg
	XorList() [][]help.Arg
	ProgramPath() string
	ProgramName() string
	Version() string
	Author() string
	Message() string
	HasHelpAndVersion() bool
}

// Output is a help renderer.
//
// Failure always returns a core.ExitError; callers at the process boundary
// turn it into an exit status.
type Output interface {
	Usage(c CmdLine) error
	Version(c CmdLine) error
	Failure(c CmdLine, e *core.ArgError) error
}

// Compile-time checks.
var (
	_ CmdLine = (*core.CmdLine)(nil)
	_ Output  = (*JSON)(nil)
	_ Output  = (*Std)(nil)
)
