// SPDX-License-Identifier: MIT
package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/cld/loops"
)

// Terminal palette. Colours degrade to plain text when output is not a TTY.
var (
	colorReinforcing = lipgloss.Color("#2CD7C7")
	colorBalancing   = lipgloss.Color("#F4D03F")
	colorError       = lipgloss.Color("#E74C3C")
	colorMuted       = lipgloss.Color("#6C7A89")
)

var styles = struct {
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Reinforcing lipgloss.Style
	Balancing   lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true),
	Muted:       lipgloss.NewStyle().Foreground(colorMuted),
	Error:       lipgloss.NewStyle().Bold(true).Foreground(colorError),
	Reinforcing: lipgloss.NewStyle().Bold(true).Foreground(colorReinforcing),
	Balancing:   lipgloss.NewStyle().Bold(true).Foreground(colorBalancing),
}

// polarityTag renders a loop name coloured by its polarity.
func polarityTag(l loops.Loop) string {
	if l.Polarity == loops.Balancing {
		return styles.Balancing.Render(l.Name)
	}

	return styles.Reinforcing.Render(l.Name)
}
