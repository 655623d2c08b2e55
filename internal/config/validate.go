package config

import (
	"fmt"
)

// Validate checks that a description can be turned into a registry:
// the program is named, argument names and flags are unique, and every
// exclusive group names known arguments not claimed by another group.
func Validate(p *Program) error {
	if p.Name == "" {
		return fmt.Errorf("%w: program name is empty", ErrInvalid)
	}

	if err := validateArgs(p.Args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := validateGroups(p.Args, p.Xor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func validateArgs(args []Arg) error {
	names := make(map[string]bool, len(args))
	flags := make(map[string]bool, len(args))

	for i, a := range args {
		if a.Name == "" {
			return fmt.Errorf("arg %d has no name", i+1)
		}

		if names[a.Name] {
			return fmt.Errorf("arg name %q is used twice", a.Name)
		}

		names[a.Name] = true

		if a.Flag == "" {
			continue
		}

		if a.Positional {
			return fmt.Errorf("positional arg %q cannot have a flag", a.Name)
		}

		if flags[a.Flag] {
			return fmt.Errorf("flag %q is used twice", a.Flag)
		}

		flags[a.Flag] = true
	}

	return nil
}

func validateGroups(args []Arg, groups []Group) error {
	known := make(map[string]bool, len(args))
	for _, a := range args {
		known[a.Name] = true
	}

	claimed := make(map[string]int)

	for i, group := range groups {
		if len(group.Members) == 0 {
			return fmt.Errorf("xor group %d has no members", i+1)
		}

		for _, name := range group.Members {
			if !known[name] {
				return fmt.Errorf("xor group %d names unknown arg %q", i+1, name)
			}

			if prev, ok := claimed[name]; ok {
				return fmt.Errorf("arg %q is in xor groups %d and %d", name, prev, i+1)
			}

			claimed[name] = i + 1
		}
	}

	return nil
}
