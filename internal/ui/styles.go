package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorTextMuted   = lipgloss.Color("240")
	colorAccentAmber = lipgloss.Color("214")
	colorAccentGreen = lipgloss.Color("78")
	colorAccentRed   = lipgloss.Color("203")
	colorAccentBlue  = lipgloss.Color("75")
	colorSelection   = lipgloss.Color("236")
)

var (
	styleItemNormal   = lipgloss.NewStyle()
	styleItemRead     = lipgloss.NewStyle().Foreground(colorTextMuted)
	styleItemSelected = lipgloss.NewStyle().Background(colorSelection).Bold(true)

	styleSourceBadge = lipgloss.NewStyle().Foreground(colorAccentBlue)
	styleTimestamp   = lipgloss.NewStyle().Foreground(colorTextMuted)
	styleTopic       = lipgloss.NewStyle().Foreground(colorAccentAmber)

	styleHelp   = lipgloss.NewStyle().Foreground(colorTextMuted)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorAccentBlue)
	styleTLDR   = lipgloss.NewStyle().Italic(true).Foreground(colorTextMuted)

	styleNudge = lipgloss.NewStyle().
			Foreground(colorAccentAmber).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccentAmber).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().Foreground(colorAccentRed)
)

// signalStyle colors a signal score: green for dense, muted for fluff.
func signalStyle(signal float64) lipgloss.Style {
	switch {
	case signal >= 0.6:
		return lipgloss.NewStyle().Foreground(colorAccentGreen)
	case signal >= 0.3:
		return lipgloss.NewStyle().Foreground(colorAccentAmber)
	default:
		return lipgloss.NewStyle().Foreground(colorTextMuted)
	}
}

// sentimentGlyph maps a sentiment score onto a compact indicator.
func sentimentGlyph(sentiment float64) string {
	switch {
	case sentiment >= 0.2:
		return "+"
	case sentiment <= -0.2:
		return "-"
	default:
		return "·"
	}
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
