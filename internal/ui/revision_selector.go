package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	pkgtypes "github.com/vietdv277/nimbus/pkg/types"
)

const (
	revListHeight    = 8
	revColWidthTime  = 19
	revColWidthState = 10
	revMinWidth      = 60
)

// RevisionModel represents the bubbletea model for revision selection
type RevisionModel struct {
	revisions    []pkgtypes.Revision
	filtered     []pkgtypes.Revision
	cursor       int
	offset       int
	search       string
	selected     *pkgtypes.Revision
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
	maxIDWidth   int // dynamic width for revision identifiers
}

// NewRevisionModel creates a new revision selector model
func NewRevisionModel(revisions []pkgtypes.Revision) RevisionModel {
	// Calculate max identifier width from all revisions
	maxIDWidth := 20 // minimum
	for _, rev := range revisions {
		idWidth := runewidth.StringWidth(rev.ID)
		if idWidth > maxIDWidth {
			maxIDWidth = idWidth
		}
	}

	m := RevisionModel{
		revisions:  revisions,
		filtered:   revisions,
		cursor:     0,
		offset:     0,
		search:     "",
		termWidth:  80,
		maxIDWidth: maxIDWidth,
	}
	m.calculateWidths()
	return m
}

func (m *RevisionModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < revMinWidth {
		m.contentWidth = revMinWidth
	}

	// cursor(3) + id + spacing(2) + time(19) + spacing(2) + state(10)
	minRequiredWidth := m.maxIDWidth + 36
	if m.contentWidth < minRequiredWidth {
		m.contentWidth = minRequiredWidth
	}
}

// Init implements tea.Model
func (m RevisionModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m RevisionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+revListHeight {
					m.offset = m.cursor - revListHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterRevisions()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterRevisions()
		}
	}

	return m, nil
}

func (m *RevisionModel) filterRevisions() {
	if m.search == "" {
		m.filtered = m.revisions
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, rev := range m.revisions {
			if strings.Contains(strings.ToLower(rev.ID), query) {
				m.filtered = append(m.filtered, rev)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model
func (m RevisionModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Search input
	searchLine := " > " + m.search
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(KeyStyle.Render(padToWidth(searchLine, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Empty line
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Revision list
	visibleEnd := m.offset + revListHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}

	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRevisionRow(i))
	}

	if len(m.filtered) == 0 {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(MutedStyle.Render(padToWidth(" No revisions found", w)))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Fill remaining lines
	fill := m.offset + revListHeight
	if len(m.filtered) == 0 {
		fill--
	}
	for i := len(m.filtered); i < fill; i++ {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m RevisionModel) renderRevisionRow(idx int) string {
	var sb strings.Builder
	rev := m.filtered[idx]
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(Vertical))

	var line strings.Builder
	plainWidth := 0

	// Cursor
	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	// Identifier (using dynamic width)
	idText := padRight(rev.ID, m.maxIDWidth)
	line.WriteString(RevisionStyle.Render(idText))
	line.WriteString("  ")
	plainWidth += m.maxIDWidth + 2

	// Last modified
	timeText := padRight(rev.LastModified.Format("2006-01-02 15:04:05"), revColWidthTime)
	line.WriteString(ValueStyle.Render(timeText))
	line.WriteString("  ")
	plainWidth += revColWidthTime + 2

	// Active marker
	var stateText string
	if rev.Active {
		stateText = ActiveStyle.Render(padRight("● active", revColWidthState))
	} else {
		stateText = InactiveStyle.Render(padRight("○", revColWidthState))
	}
	line.WriteString(stateText)
	plainWidth += revColWidthState

	// Pad to fill
	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (m RevisionModel) renderStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d revisions", len(m.filtered), len(m.revisions))
	hintsPlain := "[Enter:activate] [Esc:cancel]"

	countWidth := runewidth.StringWidth(countInfo)
	hintsWidth := runewidth.StringWidth(hintsPlain)
	padding := w - countWidth - hintsWidth

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// SelectRevision displays an interactive selector over the revision ledger
func SelectRevision(revisions []pkgtypes.Revision) (*pkgtypes.Revision, error) {
	if len(revisions) == 0 {
		return nil, fmt.Errorf("no revisions available")
	}

	m := NewRevisionModel(revisions)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(RevisionModel)
	if result.cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}

	return result.selected, nil
}
