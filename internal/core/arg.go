package core

import (
	"fmt"
	"strings"
)

// Arg is a registered command-line argument. It is immutable once created,
// apart from the exclusive-group marker set by CmdLine.XorAdd.
type Arg struct {
	flag       string
	name       string
	desc       string
	valueID    string
	required   bool
	positional bool
	ignoreable bool
	xored      bool
}

// ArgSpec describes an argument for NewArg.
type ArgSpec struct {
	// Flag is the short flag without its dash ("v" for -v). Optional.
	Flag string
	// Name is the long name without dashes ("verbose" for --verbose).
	Name string
	Desc string
	// ValueID names the value the argument takes ("file" renders <file>).
	// Empty means the argument is a switch.
	ValueID    string
	Required   bool
	Positional bool
	// Ignoreable arguments are left out of the usage synopsis.
	Ignoreable bool
}

// Description returns the description, prefixed with a requirement label
// for required arguments.
func (a *Arg) Description() string {
	if !a.required {
		return a.desc
	}

	label := "required"
	if a.xored {
		label = "OR required"
	}

	return "(" + label + ")  " + a.desc
}

// Flag returns the short flag without its dash, or "" if there is none.
func (a *Arg) Flag() string {
	return a.flag
}

// IsIgnoreable reports whether the argument is left out of the synopsis.
func (a *Arg) IsIgnoreable() bool {
	return a.ignoreable
}

// IsRequired reports whether the argument must be given.
func (a *Arg) IsRequired() bool {
	return a.required
}

// LongID returns the identifier used in the detailed listing, e.g.
// "-f <file>,  --file <file>".
func (a *Arg) LongID() string {
	if a.positional {
		return a.value()
	}

	var sb strings.Builder

	if a.flag != "" {
		sb.WriteString(flagPrefix + a.flag)

		if a.valueID != "" {
			sb.WriteString(" " + a.value())
		}

		sb.WriteString(",  ")
	}

	sb.WriteString(namePrefix + a.name)

	if a.valueID != "" {
		sb.WriteString(" " + a.value())
	}

	return sb.String()
}

// Name returns the long name.
func (a *Arg) Name() string {
	return a.name
}

// ShortID returns the identifier used in the synopsis, e.g. "[-f <file>]".
func (a *Arg) ShortID() string {
	var id string

	switch {
	case a.positional:
		id = a.value()
	case a.flag != "":
		id = flagPrefix + a.flag
	default:
		id = namePrefix + a.name
	}

	if !a.positional && a.valueID != "" {
		id += " " + a.value()
	}

	if !a.required {
		id = "[" + id + "]"
	}

	return id
}

// NewArg validates spec and returns the argument it describes.
func NewArg(spec ArgSpec) (*Arg, error) {
	if spec.Name == "" {
		return nil, ErrNoName
	}

	if strings.ContainsAny(spec.Name+spec.Flag, " \t\n") {
		return nil, fmt.Errorf("%w: %q", ErrBadIdentifier, spec.Name)
	}

	if spec.Positional && spec.Flag != "" {
		return nil, fmt.Errorf("%w: positional %q cannot have flag %q", ErrBadIdentifier, spec.Name, spec.Flag)
	}

	valueID := spec.ValueID
	if spec.Positional && valueID == "" {
		valueID = spec.Name
	}

	return &Arg{
		flag:       spec.Flag,
		name:       spec.Name,
		desc:       spec.Desc,
		valueID:    valueID,
		required:   spec.Required,
		positional: spec.Positional,
		ignoreable: spec.Ignoreable,
	}, nil
}

// unexported constants.
const (
	flagPrefix = "-"
	namePrefix = "--"
)

func (a *Arg) value() string {
	return "<" + a.valueID + ">"
}

// builtinArgs returns the arguments registered by a CmdLine with help and
// version support, in display order.
func builtinArgs() []*Arg {
	return []*Arg{
		{
			flag: "h",
			name: "help",
			desc: "Displays usage information and exits.",
		},
		{
			name: "version",
			desc: "Displays version information and exits.",
		},
		{
			flag:       "-",
			name:       "ignore_rest",
			desc:       "Ignores the rest of the labeled arguments following this flag.",
			ignoreable: true,
		},
	}
}
