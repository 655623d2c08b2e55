// Package help composes the usage synopsis and the detailed option listing.
// This file defines the argument view the composers read.

package help

// Arg is the read-only view of a registered argument.
// Implementations must be comparable: group membership is decided by
// identity, so pointer types are expected.
type Arg interface {
	ShortID() string
	LongID() string
	Description() string
	Flag() string
	IsIgnoreable() bool
}

// Entry is one option as it appears in the detailed listing.
type Entry struct {
	Short string
	Long  string
	Desc  string
}

// Listing is the detailed option listing in structured form: the exclusive
// groups first, then the standalone options that carry a flag.
type Listing struct {
	Groups  [][]Entry
	Options []Entry
}

// BuildListing returns the entries WriteLongUsage would print, in the same order.
func BuildListing(groups [][]Arg, args []Arg) Listing {
	var listing Listing

	for _, group := range groups {
		entries := make([]Entry, 0, len(group))
		for _, a := range group {
			entries = append(entries, entryFor(a))
		}

		listing.Groups = append(listing.Groups, entries)
	}

	for _, a := range standalone(groups, args) {
		if a.Flag() != "" {
			listing.Options = append(listing.Options, entryFor(a))
		}
	}

	return listing
}

func entryFor(a Arg) Entry {
	return Entry{Short: a.ShortID(), Long: a.LongID(), Desc: a.Description()}
}

// standalone returns the arguments that belong to no group, in registry order.
func standalone(groups [][]Arg, args []Arg) []Arg {
	grouped := make(map[Arg]struct{})

	for _, group := range groups {
		for _, a := range group {
			grouped[a] = struct{}{}
		}
	}

	result := make([]Arg, 0, len(args))

	for _, a := range args {
		if _, ok := grouped[a]; !ok {
			result = append(result, a)
		}
	}

	return result
}
