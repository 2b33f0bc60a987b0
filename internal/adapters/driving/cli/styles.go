package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// Colours for one-shot command output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourWarning = lipgloss.Color("#F9E2AF")
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	fingerprintStyle = lipgloss.NewStyle().Foreground(colourMuted)
	nameStyle        = lipgloss.NewStyle().Bold(true)
	emptyStyle       = lipgloss.NewStyle().Foreground(colourWarning)
	summaryStyle     = lipgloss.NewStyle().Foreground(colourSuccess)
)

// originStyles tint the origin column.
var originStyles = map[domain.Origin]lipgloss.Style{
	domain.OriginLocal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	domain.OriginRemote: lipgloss.NewStyle().Foreground(colourPrimary),
	domain.OriginUpload: lipgloss.NewStyle().Foreground(colourSuccess),
}

func originStyle(o domain.Origin) lipgloss.Style {
	if s, ok := originStyles[o]; ok {
		return s
	}
	return fingerprintStyle
}
