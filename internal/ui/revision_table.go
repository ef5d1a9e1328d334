package ui

import (
	"fmt"
	"strings"

	pkgtypes "github.com/vietdv277/nimbus/pkg/types"
)

// Column widths
var revisionColumnWidths = []int{32, 20, 10}

// PrintRevisionTable prints the revision ledger in a styled box table,
// newest revision first
func PrintRevisionTable(revisions []pkgtypes.Revision) {
	headers := []string{"Revision", "Last Modified", "Status"}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range revisionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(revisionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, revisionColumnWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range revisionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(revisionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for _, rev := range revisions {
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := " " + padRight(rev.ID, revisionColumnWidths[0]) + " "
		sb.WriteString(RevisionStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(rev.LastModified.Format("2006-01-02 15:04:05"), revisionColumnWidths[1]) + " "
		sb.WriteString(ValueStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString(formatStatus(rev.Active, revisionColumnWidths[2]))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range revisionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(revisionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())

	printRevisionSummary(revisions)
}

func formatStatus(active bool, width int) string {
	if active {
		return ActiveStyle.Render(fmt.Sprintf(" ● %-*s ", width-3, "active"))
	}
	return InactiveStyle.Render(fmt.Sprintf(" ○ %-*s ", width-3, ""))
}

func printRevisionSummary(revisions []pkgtypes.Revision) {
	activeID := ""
	for _, rev := range revisions {
		if rev.Active {
			activeID = rev.ID
			break
		}
	}

	summary := fmt.Sprintf("  %d revisions", len(revisions))
	if activeID != "" {
		summary += " (" + ActiveStyle.Render("active: "+activeID) + ")"
	} else {
		summary += " (" + MutedStyle.Render("none active") + ")"
	}

	fmt.Println(summary)
}
