package help

import (
	"io"
	"strings"

	"github.com/toejough/argdoc/internal/wrap"
)

// Option listing layout.
const (
	// DescColumn is the column descriptions start at when the ID is short.
	DescColumn = 35
	// MinPadding is the least number of spaces between ID and description.
	MinPadding = 2
	// OptionIndent is the indent of an option line.
	OptionIndent = 2
	// OptionOffset aligns wrapped description text under DescColumn.
	OptionOffset = DescColumn - OptionIndent
	// SeparatorIndent is the indent of the "-- OR --" marker.
	SeparatorIndent = 9
	// Separator is printed between members of an exclusive group.
	Separator = "-- OR --"
)

// OptionLine joins an ID and its description, padding the ID to DescColumn
// but never by fewer than MinPadding spaces.
func OptionLine(longID, desc string) string {
	padding := max(DescColumn-len(longID), MinPadding)

	return longID + strings.Repeat(" ", padding) + desc
}

// WriteLongUsage writes the detailed option listing to w.
//
// Members of each exclusive group are listed first, separated by "-- OR --".
// Then every ungrouped argument that has a flag follows in registry order.
// Each block is followed by a blank line.
func WriteLongUsage(w io.Writer, groups [][]Arg, args []Arg) {
	listing := BuildListing(groups, args)

	for _, group := range listing.Groups {
		for i, e := range group {
			writeOption(w, e)

			if i < len(group)-1 {
				wrap.Write(w, wrap.Spec{Text: Separator, MaxWidth: Width, Indent: SeparatorIndent})
				_, _ = io.WriteString(w, "\n")
			}
		}
	}

	for _, e := range listing.Options {
		writeOption(w, e)
	}
}

func writeOption(w io.Writer, e Entry) {
	wrap.Write(w, wrap.Spec{
		Text:            OptionLine(e.Long, e.Desc),
		MaxWidth:        Width,
		Indent:          OptionIndent,
		FirstLineOffset: OptionOffset,
	})
	_, _ = io.WriteString(w, "\n")
}
