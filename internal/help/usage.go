package help

import (
	"io"
	"strings"

	"github.com/toejough/argdoc/internal/wrap"
)

// Layout constants shared by the usage writers.
const (
	// Width is the terminal width all help text is wrapped to.
	Width = 80
	// UsageOffset indents synopsis continuation lines past "Usage: ".
	UsageOffset = 5
)

// ShortUsage assembles the one-line synopsis:
//
//	<programPath> [OPTIONS] {-a|-b} -c ...
//
// Exclusive groups come first, in order, as pipe-joined short IDs in braces.
// Every other argument that is not ignoreable follows in registry order.
func ShortUsage(programPath string, groups [][]Arg, args []Arg) string {
	var sb strings.Builder

	sb.WriteString(programPath)
	sb.WriteString(" [OPTIONS]")

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		sb.WriteString(" {")

		for i, a := range group {
			if i > 0 {
				sb.WriteString("|")
			}

			sb.WriteString(a.ShortID())
		}

		sb.WriteString("}")
	}

	for _, a := range standalone(groups, args) {
		if !a.IsIgnoreable() {
			sb.WriteString(" ")
			sb.WriteString(a.ShortID())
		}
	}

	return sb.String()
}

// WriteShortUsage writes the wrapped synopsis to w.
// The first line is meant to follow a "Usage: " label already on the line.
func WriteShortUsage(w io.Writer, programPath string, groups [][]Arg, args []Arg) {
	wrap.Write(w, wrap.Spec{
		Text:            ShortUsage(programPath, groups, args),
		MaxWidth:        Width,
		FirstLineOffset: UsageOffset,
	})
}
