// Package help styling definitions.
// This file defines lipgloss styles for the optional styled renderer.

package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to help framing text.
// Only labels that are never wrapped are styled, so column math stays exact.
type Styles struct {
	// Header is the style for "Usage:" and "Options:" (bold).
	Header lipgloss.Style

	// Error is the style for the "error:" label (bold red).
	Error lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")), // Red
	}
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder

	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}

		if inEscape {
			if r == 'm' {
				inEscape = false
			}

			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}
