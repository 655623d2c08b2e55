// Package config loads program descriptions from TOML files and turns them
// into argument registries.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/toejough/argdoc/internal/core"
	"github.com/toejough/argdoc/internal/file"
)

// Exported variables.
var (
	ErrUnknownKey = errors.New("unknown key")
	ErrInvalid    = errors.New("invalid program description")
)

// Program describes one program: its metadata, its arguments in display
// order and its exclusive groups.
type Program struct {
	Name           string  `toml:"program"`
	Path           string  `toml:"path"`
	Version        string  `toml:"version"`
	Author         string  `toml:"author"`
	Message        string  `toml:"message"`
	HelpAndVersion bool    `toml:"help_and_version"`
	Args           []Arg   `toml:"arg"`
	Xor            []Group `toml:"xor"`

	// Source is the file the description was loaded from, if any.
	Source string `toml:"-"`
}

// Arg is one [[arg]] table.
type Arg struct {
	Name        string `toml:"name"`
	Flag        string `toml:"flag"`
	Description string `toml:"description"`
	Value       string `toml:"value"`
	Required    bool   `toml:"required"`
	Positional  bool   `toml:"positional"`
	Ignoreable  bool   `toml:"ignoreable"`
}

// Group is one [[xor]] table naming mutually exclusive arguments.
type Group struct {
	Members []string `toml:"members"`
}

// CmdLine validates the description and builds the registry it defines.
func (p *Program) CmdLine() (*core.CmdLine, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	c := core.NewCmdLine(p.Message, p.Version, p.HelpAndVersion)
	c.SetProgramName(p.Name)
	c.SetAuthor(p.Author)

	path := p.Path
	if path == "" {
		path = p.Name
	}

	c.SetProgramPath(path)

	byName := make(map[string]*core.Arg, len(p.Args))

	for _, a := range p.Args {
		arg, err := core.NewArg(core.ArgSpec{
			Flag:       a.Flag,
			Name:       a.Name,
			Desc:       a.Description,
			ValueID:    a.Value,
			Required:   a.Required,
			Positional: a.Positional,
			Ignoreable: a.Ignoreable,
		})
		if err != nil {
			return nil, fmt.Errorf("arg %q: %w", a.Name, err)
		}

		if err := c.Add(arg); err != nil {
			return nil, fmt.Errorf("arg %q: %w", a.Name, err)
		}

		byName[a.Name] = arg
	}

	for i, group := range p.Xor {
		members := make([]*core.Arg, 0, len(group.Members))
		for _, name := range group.Members {
			members = append(members, byName[name])
		}

		if err := c.XorAdd(members...); err != nil {
			return nil, fmt.Errorf("xor group %d: %w", i+1, err)
		}
	}

	return c, nil
}

// Load reads, parses and validates the description at path.
func Load(path string, logger *slog.Logger) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		logger.Error("failed to parse program description", "path", path, "error", err)
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	p.Source = path

	logger.Debug("loaded program description",
		"path", path,
		"program", p.Name,
		"args", len(p.Args),
		"groups", len(p.Xor),
	)

	return p, nil
}

// LoadAll loads every description matched by patterns, in path order.
func LoadAll(logger *slog.Logger, patterns ...string) ([]*Program, error) {
	paths, err := file.Match(patterns...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger.Debug("matched program descriptions", "patterns", patterns, "files", len(paths))

	programs := make([]*Program, 0, len(paths))

	for _, path := range paths {
		p, err := Load(path, logger)
		if err != nil {
			return nil, err
		}

		programs = append(programs, p)
	}

	return programs, nil
}

// Parse decodes and validates a TOML description. Keys that map to no
// field are rejected.
func Parse(data []byte) (*Program, error) {
	p := &Program{}

	md, err := toml.Decode(string(data), p)
	if err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := Validate(p); err != nil {
		return nil, err
	}

	return p, nil
}
