// Package file locates program description files with fish-style globs.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Exported variables.
var (
	ErrNoMatch    = errors.New("pattern matched no files")
	ErrNoPatterns = errors.New("no patterns provided")
)

// Match expands patterns (including ** and {a,b}) against the file system,
// relative to the working directory unless a pattern is absolute.
// Only regular files are returned, sorted and without duplicates. Every
// pattern must match at least one file.
func Match(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range patterns {
		fsys, base, rel := patternFS(filepath.Clean(pattern))

		found, err := matchFS(fsys, rel)
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
		}

		for _, match := range found {
			path := filepath.FromSlash(match)
			if base != "" {
				path = filepath.Join(base, path)
			}

			if !seen[path] {
				seen[path] = true
				matches = append(matches, path)
			}
		}
	}

	sort.Strings(matches)

	return matches, nil
}

// MatchFS is Match over fsys, with slash-separated patterns.
func MatchFS(fsys fs.FS, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range patterns {
		found, err := matchFS(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
		}

		for _, match := range found {
			if !seen[match] {
				seen[match] = true
				matches = append(matches, match)
			}
		}
	}

	sort.Strings(matches)

	return matches, nil
}

func matchFS(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	list, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(list))

	for _, match := range list {
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, err
		}

		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoMatch
	}

	return files, nil
}

// patternFS splits an OS path pattern into a file system rooted at the
// volume root for absolute patterns (or the working directory otherwise),
// that root, and the slash-separated pattern relative to it.
func patternFS(pattern string) (fs.FS, string, string) {
	if filepath.IsAbs(pattern) {
		base := filepath.VolumeName(pattern) + string(filepath.Separator)
		rel := strings.TrimPrefix(pattern, base)

		return os.DirFS(base), base, filepath.ToSlash(rel)
	}

	return os.DirFS("."), "", filepath.ToSlash(pattern)
}
