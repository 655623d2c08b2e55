package output

import (
	"io"

	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/help"
	"github.com/toejough/argdoc/internal/wrap"
)

// Std renders plain 80-column text: usage and version to out, failures to
// errOut.
type Std struct {
	out    io.Writer
	errOut io.Writer
	styles *help.Styles
}

// NewStd returns a plain-text renderer.
func NewStd(out, errOut io.Writer) *Std {
	return &Std{out: out, errOut: errOut}
}

// NewStyled returns a renderer with the same layout as NewStd whose labels
// are decorated with styles.
func NewStyled(out, errOut io.Writer, styles help.Styles) *Std {
	return &Std{out: out, errOut: errOut, styles: &styles}
}

// Failure reports e on errOut followed by the short usage and a pointer to
// --help, or by the full usage when the program has no --help.
func (o *Std) Failure(c CmdLine, e *core.ArgError) error {
	write(o.errOut, o.errorLabel()+" "+e.ArgID()+"\n")
	write(o.errOut, failureIndent+e.Message+"\n\n")

	if !c.HasHelpAndVersion() {
		_ = o.Usage(c)

		return core.ExitError{Code: 1}
	}

	write(o.errOut, o.header("Usage:")+" ")
	help.WriteShortUsage(o.errOut, c.ProgramPath(), c.XorList(), c.ArgList())
	write(o.errOut, "\nFor complete USAGE and HELP type: \n")
	write(o.errOut, "   "+c.ProgramPath()+" --help\n\n")

	return core.ExitError{Code: 1}
}

// Usage writes the program message, the synopsis and the option listing.
func (o *Std) Usage(c CmdLine) error {
	wrap.Write(o.out, wrap.Spec{Text: c.Message(), MaxWidth: help.Width})

	write(o.out, "\n"+o.header("Usage:")+" ")
	help.WriteShortUsage(o.out, c.ProgramPath(), c.XorList(), c.ArgList())

	write(o.out, "\n"+o.header("Options:")+" \n")
	help.WriteLongUsage(o.out, c.XorList(), c.ArgList())

	return nil
}

// Version writes the version banner.
func (o *Std) Version(c CmdLine) error {
	write(o.out, c.ProgramName()+" "+c.Version()+"\n\n")
	write(o.out, "Written by "+c.Author()+"\n")

	return nil
}

// unexported constants.
const (
	failureIndent = "       "
)

func (o *Std) errorLabel() string {
	if o.styles == nil {
		return "error:"
	}

	return o.styles.Error.Render("error:")
}

func (o *Std) header(label string) string {
	if o.styles == nil {
		return label
	}

	return o.styles.Header.Render(label)
}

func write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
