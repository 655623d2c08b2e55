package wrap_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/argdoc/internal/wrap"
)

func TestLinesCarriesCommaAndPipeToNextLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "{-a|-b|-c}", MaxWidth: 6})
	g.Expect(lines).To(Equal([]string{"{-a|-b", "|-c}"}))

	lines = wrap.Lines(wrap.Spec{Text: "red,green,blue", MaxWidth: 10})
	g.Expect(lines).To(Equal([]string{"red,green", ",blue"}))
}

func TestLinesCutsAtLastSpaceWithinWidth(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "aaa bbb ccc", MaxWidth: 8})
	g.Expect(lines).To(Equal([]string{"aaa bbb", "ccc"}))
}

func TestLinesEmptyTextEmitsIndentOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(wrap.Lines(wrap.Spec{Text: "", MaxWidth: 80, Indent: 4})).To(Equal([]string{"    "}))
	g.Expect(wrap.Lines(wrap.Spec{Text: "", MaxWidth: 2, Indent: 4})).To(Equal([]string{"    "}))
}

func TestLinesExplicitNewlineForcesBreak(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "ab\ncd efgh ijkl", MaxWidth: 8})
	g.Expect(lines).To(Equal([]string{"ab", "cd efgh", "ijkl"}))
}

func TestLinesFitTextIsUntouched(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(wrap.Lines(wrap.Spec{Text: "short", MaxWidth: 80, Indent: 2, FirstLineOffset: 33})).
		To(Equal([]string{"  short"}))
	g.Expect(wrap.Lines(wrap.Spec{Text: "a\nb", MaxWidth: 80, Indent: 1})).
		To(Equal([]string{" a\nb"}))
}

func TestLinesHangingIndentAppliesAfterFirstLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "aaa bbb ccc", MaxWidth: 8, FirstLineOffset: 2})
	g.Expect(lines).To(Equal([]string{"aaa bbb", "  ccc"}))
}

func TestLinesHardSplitsUnbreakableToken(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(wrap.Lines(wrap.Spec{Text: "abcdefghijkl", MaxWidth: 5})).
		To(Equal([]string{"abcde", "fghij", "kl"}))
	g.Expect(wrap.Lines(wrap.Spec{Text: "abcdefghij", MaxWidth: 6, Indent: 1, FirstLineOffset: 2})).
		To(Equal([]string{" abcde", "   fgh", "   ij"}))
}

func TestLinesOffsetWiderThanLineStillProgresses(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "abcdef", MaxWidth: 4, FirstLineOffset: 10})
	g.Expect(lines).To(Equal([]string{
		"abcd",
		"          e",
		"          f",
	}))
}

func TestLinesRemainderThatExactlyFillsLineIsStillSplit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := wrap.Lines(wrap.Spec{Text: "xxxxx ab cd", MaxWidth: 5})
	g.Expect(lines).To(Equal([]string{"xxxxx", "ab", "cd"}))
}

func TestLinesTwoHundredCharDescription(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	words := make([]string, 0, 20)
	for range 19 {
		words = append(words, "abcdefghi")
	}

	words = append(words, "abcdefghij")
	text := strings.Join(words, " ")
	g.Expect(text).To(HaveLen(200))

	lines := wrap.Lines(wrap.Spec{Text: text, MaxWidth: 80, Indent: 2, FirstLineOffset: 33})
	g.Expect(len(lines)).To(BeNumerically(">", 1))

	first := strings.TrimPrefix(lines[0], "  ")
	g.Expect(len(first)).To(BeNumerically("<=", 78))
	g.Expect(text[len(first)]).To(Equal(byte(' ')), "first line should end on a word boundary")

	for _, line := range lines[1:] {
		g.Expect(line).To(HavePrefix(strings.Repeat(" ", 35)))
		g.Expect(len(line) - 35).To(BeNumerically("<=", 45))
	}
}

func TestLinesZeroWidthDisablesWrapping(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	text := strings.Repeat("word ", 40)
	g.Expect(wrap.Lines(wrap.Spec{Text: text, Indent: 2})).To(Equal([]string{"  " + text}))
}

func TestProperty_LinesFitWidth(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawSpec(rt)

		for _, line := range wrap.Lines(spec) {
			if len(line) > spec.MaxWidth {
				rt.Fatalf("line %q is %d wide, max %d", line, len(line), spec.MaxWidth)
			}
		}
	})
}

func TestProperty_LinesNeverStartWithBoundarySpace(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawSpec(rt)

		for i, line := range wrap.Lines(spec) {
			content := strings.TrimPrefix(line, indentFor(spec, i))
			if strings.HasPrefix(content, " ") {
				rt.Fatalf("line %d %q starts with a space", i, line)
			}
		}
	})
}

func TestProperty_RejoinedLinesReconstructText(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawSpec(rt)
		lines := wrap.Lines(spec)

		contents := make([]string, 0, len(lines))

		for i, line := range lines {
			indent := indentFor(spec, i)
			if !strings.HasPrefix(line, indent) {
				rt.Fatalf("line %d %q lacks indent %q", i, line, indent)
			}

			contents = append(contents, strings.TrimPrefix(line, indent))
		}

		if got := strings.Join(contents, " "); got != spec.Text {
			rt.Fatalf("rejoined %q, want %q", got, spec.Text)
		}
	})
}

func TestProperty_MessyTextLinesFitWidth(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawMessySpec(rt)

		for _, line := range wrap.Lines(spec) {
			if len(line) > spec.MaxWidth {
				rt.Fatalf("line %q is %d wide, max %d", line, len(line), spec.MaxWidth)
			}
		}
	})
}

func TestProperty_MessyTextContinuationLinesNeverStartWithSpace(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawMessySpec(rt)
		lines := wrap.Lines(spec)

		for i := 1; i < len(lines); i++ {
			content := strings.TrimPrefix(lines[i], indentFor(spec, i))
			if strings.HasPrefix(content, " ") {
				rt.Fatalf("line %d %q starts with a space", i, lines[i])
			}
		}
	})
}

func TestProperty_MessyTextKeepsEveryVisibleByte(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		spec := drawMessySpec(rt)

		var got strings.Builder
		for _, line := range wrap.Lines(spec) {
			got.WriteString(line)
		}

		if visible(got.String()) != visible(spec.Text) {
			rt.Fatalf("wrapping %q lost or added text: %q", spec.Text, got.String())
		}
	})
}

func TestWriteTerminatesEachLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	wrap.Write(&buf, wrap.Spec{Text: "aaa bbb ccc", MaxWidth: 8, Indent: 1, FirstLineOffset: 1})
	g.Expect(buf.String()).To(Equal(" aaa bbb\n  ccc\n"))
}

// drawSpec draws single-spaced text whose words always fit on a
// continuation line, so no hard splits occur.
func drawSpec(rt *rapid.T) wrap.Spec {
	words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 1, 40).Draw(rt, "words")

	return wrap.Spec{
		Text:            strings.Join(words, " "),
		MaxWidth:        rapid.IntRange(20, 100).Draw(rt, "width"),
		Indent:          rapid.IntRange(0, 5).Draw(rt, "indent"),
		FirstLineOffset: rapid.IntRange(0, 5).Draw(rt, "offset"),
	}
}

// drawMessySpec draws text with runs of spaces, newlines, commas, pipes and
// tokens too long for a line, so every cut rule and hard splits occur.
func drawMessySpec(rt *rapid.T) wrap.Spec {
	pieces := rapid.SliceOfN(rapid.OneOf(
		rapid.StringMatching(`[a-z]{1,30}`),
		rapid.SampledFrom([]string{" ", "   ", ",", "|", "\n", ", ", " | ", " \n "}),
	), 1, 60).Draw(rt, "pieces")

	return wrap.Spec{
		Text:            strings.Join(pieces, ""),
		MaxWidth:        rapid.IntRange(20, 100).Draw(rt, "width"),
		Indent:          rapid.IntRange(0, 5).Draw(rt, "indent"),
		FirstLineOffset: rapid.IntRange(0, 5).Draw(rt, "offset"),
	}
}

func indentFor(spec wrap.Spec, line int) string {
	if line == 0 {
		return strings.Repeat(" ", spec.Indent)
	}

	return strings.Repeat(" ", spec.Indent+spec.FirstLineOffset)
}

// visible drops the spaces and newlines wrapping is allowed to consume.
func visible(s string) string {
	return strings.NewReplacer(" ", "", "\n", "").Replace(s)
}
