// Package ui provides the terminal dashboard for the work-ease monitor.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the dashboard.
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#CC6600", Dark: "#FFA657"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents the collection of styles used in the dashboard.
type Style struct {
	Title   lipgloss.Style
	Active  lipgloss.Style
	Idle    lipgloss.Style
	Paused  lipgloss.Style
	Warning lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Bold(true).
			Foreground(defaultColors.Highlight),

		Active: base.Foreground(defaultColors.Special),

		Idle: base.Foreground(defaultColors.Subtle),

		Paused: base.Bold(true).
			Foreground(defaultColors.Warning),

		Warning: base.Foreground(defaultColors.Warning),

		Label: base.Foreground(defaultColors.Highlight),

		Help: base.Foreground(defaultColors.Subtle),
	}
}

// Current holds the current style configuration.
var Current = DefaultStyle()
