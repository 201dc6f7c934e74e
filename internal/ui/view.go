package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
)

const rowFormat = "%-14s  %-20s  %-17s  %12s"

// View renders the order list
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("orderdeck"))
	b.WriteString("\n\n")

	// Search line: the live input while editing, otherwise the active term.
	if m.mode == modeSearch {
		b.WriteString(m.searchInput.View())
	} else if m.query.Term != "" {
		b.WriteString(dimStyle.Render("Search: ") + m.query.Term)
	} else {
		b.WriteString(dimStyle.Render("Press / to search"))
	}
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf(rowFormat, "ORDER", "CUSTOMER", "CREATED", "TOTAL")))
	b.WriteString("\n")

	switch {
	case m.coord.Loading():
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" Loading…"))
		b.WriteString("\n")
	case m.coord.Result() == nil || len(m.coord.Result().Orders) == 0:
		b.WriteString(dimStyle.Render("  no orders"))
		b.WriteString("\n")
	default:
		for i, order := range m.coord.Result().Orders {
			row := fmt.Sprintf(rowFormat,
				shortID(order.ID),
				order.CustomerID,
				order.CreatedAt.Format("2006-01-02 15:04"),
				order.TotalPrice.StringFixed(2),
			)
			if i == m.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")

	if m.mode == modeConfirmDelete {
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete order %s? (y/n)", shortID(m.pendingDelete))))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderFooter shows the pagination state from the last completed request.
func (m *Model) renderFooter() string {
	result := m.coord.Result()
	if result == nil {
		return dimStyle.Render(fmt.Sprintf("page %d · %d per page", m.query.Page, m.query.PageSize))
	}

	prev := dimStyle.Render("‹")
	if result.HasPrev {
		prev = "‹"
	}
	next := dimStyle.Render("›")
	if result.HasNext {
		next = "›"
	}

	return fmt.Sprintf("%s page %d of %d %s · %d per page",
		prev, result.Page, result.TotalPages, next, m.query.PageSize)
}

// shortID truncates opaque ids for table display
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12] + "…"
	}
	return id
}
