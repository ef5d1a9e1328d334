package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder   = "240"
	ColorHeader   = "252"
	ColorRevision = "214"
	ColorKey      = "81"
	ColorValue    = "252"
	ColorActive   = "82"
	ColorInactive = "245"
	ColorMuted    = "240"
	ColorHint     = "245"
)

// Shared styles
var (
	BorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	RevisionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRevision))
	KeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKey))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorValue))
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	InactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInactive))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// padToWidth pads or truncates a string to an exact display width
func padToWidth(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
