package main

import (
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	action  lipgloss.Style
	section lipgloss.Style
	body    lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain.Bold(true),
			action:  plain,
			section: plain.Underline(true),
			body:    plain.PaddingLeft(2),
			help:    plain,
			err:     plain,
		}
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F87AF")).
			Underline(true),
		body: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(1).
			Foreground(lipgloss.Color("#AAAAAA")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")),
	}
}
