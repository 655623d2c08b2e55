package core

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/toejough/argdoc/internal/help"
)

// CmdLine is the argument registry and exclusive-group tracker for one
// program. Display order is registration order; with help and version
// support on, the built-in arguments follow the user's.
type CmdLine struct {
	message        string
	version        string
	author         string
	programPath    string
	programName    string
	helpAndVersion bool
	args           []*Arg
	groups         [][]*Arg
	builtins       []*Arg
}

// NewCmdLine returns an empty registry.
func NewCmdLine(message, version string, helpAndVersion bool) *CmdLine {
	c := &CmdLine{
		message:        message,
		version:        version,
		helpAndVersion: helpAndVersion,
	}

	if helpAndVersion {
		c.builtins = builtinArgs()
	}

	return c
}

// Add registers a.
func (c *CmdLine) Add(a *Arg) error {
	if a == nil {
		return ErrNilArg
	}

	if clashes(a, c.all()) {
		return fmt.Errorf("%w: %s", ErrDuplicateArg, a.LongID())
	}

	c.args = append(c.args, a)

	return nil
}

// ArgList returns every argument in display order.
func (c *CmdLine) ArgList() []help.Arg {
	return asHelpArgs(c.all())
}

// Author returns the program author.
func (c *CmdLine) Author() string {
	return c.author
}

// HasHelpAndVersion reports whether the built-in --help and --version exist.
func (c *CmdLine) HasHelpAndVersion() bool {
	return c.helpAndVersion
}

// Message returns the free-form program description.
func (c *CmdLine) Message() string {
	return c.message
}

// ProgramName returns the program name, by default the base of its path.
func (c *CmdLine) ProgramName() string {
	if c.programName == "" {
		return filepath.Base(c.programPath)
	}

	return c.programName
}

// ProgramPath returns the path the program was invoked as.
func (c *CmdLine) ProgramPath() string {
	return c.programPath
}

// SetAuthor sets the author shown in the version banner.
func (c *CmdLine) SetAuthor(author string) {
	c.author = author
}

// SetProgramName overrides the name derived from the program path.
func (c *CmdLine) SetProgramName(name string) {
	c.programName = name
}

// SetProgramPath sets the path the program was invoked as.
func (c *CmdLine) SetProgramPath(path string) {
	c.programPath = path
}

// Version returns the program version.
func (c *CmdLine) Version() string {
	return c.version
}

// XorAdd declares args mutually exclusive. Members not yet registered are
// added; no argument may belong to more than one group. On error the
// registry is left unchanged.
func (c *CmdLine) XorAdd(args ...*Arg) error {
	if len(args) == 0 {
		return ErrEmptyGroup
	}

	var added []*Arg

	for i, a := range args {
		if a == nil {
			return ErrNilArg
		}

		if c.grouped(a) {
			return fmt.Errorf("%w: %s", ErrAlreadyGrouped, a.LongID())
		}

		for _, other := range args[:i] {
			if other == a {
				return fmt.Errorf("%w: %s", ErrAlreadyGrouped, a.LongID())
			}
		}

		if c.registered(a) {
			continue
		}

		if clashes(a, c.all()) || clashes(a, added) {
			return fmt.Errorf("%w: %s", ErrDuplicateArg, a.LongID())
		}

		added = append(added, a)
	}

	c.args = append(c.args, added...)

	for _, a := range args {
		a.xored = true
	}

	c.groups = append(c.groups, slices.Clone(args))

	return nil
}

// XorList returns the exclusive groups in declaration order.
func (c *CmdLine) XorList() [][]help.Arg {
	groups := make([][]help.Arg, 0, len(c.groups))
	for _, group := range c.groups {
		groups = append(groups, asHelpArgs(group))
	}

	return groups
}

func (c *CmdLine) all() []*Arg {
	all := make([]*Arg, 0, len(c.args)+len(c.builtins))
	all = append(all, c.args...)

	return append(all, c.builtins...)
}

func (c *CmdLine) grouped(a *Arg) bool {
	for _, group := range c.groups {
		for _, member := range group {
			if member == a {
				return true
			}
		}
	}

	return false
}

func (c *CmdLine) registered(a *Arg) bool {
	for _, existing := range c.args {
		if existing == a {
			return true
		}
	}

	return false
}

// clashes reports whether a shares a name or flag with any of args.
func clashes(a *Arg, args []*Arg) bool {
	for _, existing := range args {
		if existing.name == a.name || (a.flag != "" && existing.flag == a.flag) {
			return true
		}
	}

	return false
}

func asHelpArgs(args []*Arg) []help.Arg {
	result := make([]help.Arg, 0, len(args))
	for _, a := range args {
		result = append(result, a)
	}

	return result
}
