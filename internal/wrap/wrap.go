// Package wrap reflows text into fixed-width terminal lines.
// It cuts at spaces, commas and pipes, honours embedded newlines as forced
// breaks, and supports a hanging indent for continuation lines.
package wrap

import (
	"io"
	"strings"
)

// Spec describes a single wrap request.
type Spec struct {
	Text string
	// MaxWidth is the terminal width. Zero or less disables wrapping.
	MaxWidth int
	// Indent is the number of spaces in front of the first line.
	Indent int
	// FirstLineOffset is added to Indent for every line after the first.
	FirstLineOffset int
}

// Lines returns the lines Write would emit, without line terminators.
//
// When the text fits (or wrapping is disabled) it is returned untouched as a
// single line, embedded newlines included.
func Lines(spec Spec) []string {
	text := spec.Text
	length := len(text)

	if spec.MaxWidth <= 0 || length == 0 || length+spec.Indent <= spec.MaxWidth {
		return []string{pad(spec.Indent) + text}
	}

	st := state{
		indent:  spec.Indent,
		allowed: max(spec.MaxWidth-spec.Indent, 1),
	}

	var lines []string

	for st.cursor < length {
		cut, skip := st.nextCut(text)
		lines = append(lines, pad(st.indent)+text[st.cursor:st.cursor+cut])

		if st.cursor == 0 {
			st.indent += spec.FirstLineOffset
			st.allowed = max(st.allowed-spec.FirstLineOffset, 1)
		}

		st.cursor = skipSpaces(text, st.cursor+cut+skip)
	}

	return lines
}

// Write wraps spec.Text and writes each line, newline-terminated, to w.
func Write(w io.Writer, spec Spec) {
	for _, line := range Lines(spec) {
		_, _ = io.WriteString(w, line+"\n")
	}
}

// unexported constants.
const (
	boundaryChars = " ,|"
)

// state is the running position of one wrap pass.
type state struct {
	cursor  int
	indent  int
	allowed int
}

// nextCut returns how many bytes of text starting at the cursor go on the
// next line, and how many more bytes the cut consumes without emitting them
// (one for a swallowed newline, zero otherwise).
func (s state) nextCut(text string) (int, int) {
	n := min(len(text)-s.cursor, s.allowed)

	if n == s.allowed {
		for n >= 0 && !isBoundary(byteAt(text, s.cursor+n)) {
			n--
		}
	}

	if n <= 0 {
		n = s.allowed
	}

	if i := strings.IndexByte(text[s.cursor:s.cursor+n], '\n'); i >= 0 {
		return i, 1
	}

	return n, 0
}

// byteAt returns text[i], or zero past the end of text.
func byteAt(text string, i int) byte {
	if i >= len(text) {
		return 0
	}

	return text[i]
}

func isBoundary(c byte) bool {
	return c != 0 && strings.IndexByte(boundaryChars, c) >= 0
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

func skipSpaces(text string, i int) int {
	for i < len(text) && text[i] == ' ' {
		i++
	}

	return i
}
