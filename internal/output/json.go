package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/help"
)

// JSON renders the same content as Std as indented JSON documents, for
// tools that build their own help screens.
type JSON struct {
	out    io.Writer
	errOut io.Writer
}

// NewJSON returns a JSON renderer.
func NewJSON(out, errOut io.Writer) *JSON {
	return &JSON{out: out, errOut: errOut}
}

// Failure writes the error, the synopsis and, when available, the help
// command to errOut.
func (o *JSON) Failure(c CmdLine, e *core.ArgError) error {
	doc := failureDoc{
		Error:    errorDoc{Arg: e.ID, Message: e.Message},
		Synopsis: help.ShortUsage(c.ProgramPath(), c.XorList(), c.ArgList()),
	}

	if c.HasHelpAndVersion() {
		doc.Help = c.ProgramPath() + " --help"
	}

	_ = encode(o.errOut, doc)

	return core.ExitError{Code: 1}
}

// Usage writes the usage document to out.
func (o *JSON) Usage(c CmdLine) error {
	listing := help.BuildListing(c.XorList(), c.ArgList())

	doc := usageDoc{
		Program:  c.ProgramName(),
		Version:  c.Version(),
		Message:  c.Message(),
		Synopsis: help.ShortUsage(c.ProgramPath(), c.XorList(), c.ArgList()),
		Options:  entryDocs(listing.Options),
	}

	for _, group := range listing.Groups {
		doc.Groups = append(doc.Groups, entryDocs(group))
	}

	return encode(o.out, doc)
}

// Version writes the version document to out.
func (o *JSON) Version(c CmdLine) error {
	return encode(o.out, versionDoc{
		Program: c.ProgramName(),
		Version: c.Version(),
		Author:  c.Author(),
	})
}

type entryDoc struct {
	Short       string `json:"short"`
	Long        string `json:"long"`
	Description string `json:"description"`
}

type errorDoc struct {
	Arg     string `json:"arg"`
	Message string `json:"message"`
}

type failureDoc struct {
	Error    errorDoc `json:"error"`
	Synopsis string   `json:"synopsis"`
	Help     string   `json:"help,omitempty"`
}

type usageDoc struct {
	Program  string       `json:"program"`
	Version  string       `json:"version,omitempty"`
	Message  string       `json:"message,omitempty"`
	Synopsis string       `json:"synopsis"`
	Groups   [][]entryDoc `json:"exclusive_groups,omitempty"`
	Options  []entryDoc   `json:"options,omitempty"`
}

type versionDoc struct {
	Program string `json:"program"`
	Version string `json:"version"`
	Author  string `json:"author,omitempty"`
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %T: %w", v, err)
	}

	return nil
}

func entryDocs(entries []help.Entry) []entryDoc {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDoc{Short: e.Short, Long: e.Long, Description: e.Desc})
	}

	return docs
}
