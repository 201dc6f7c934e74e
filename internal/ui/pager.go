package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"orderdeck/internal/domain"
)

// showInPager displays content in the ov pager, handing the terminal over
// and back around the pager run.
func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderOrderDetail builds the pager content for a single order.
func renderOrderDetail(order domain.Order) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Order " + order.ID))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Customer:"), order.CustomerID))
	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("Created:"), order.CreatedAt.Format(time.RFC1123)))
	b.WriteString(fmt.Sprintf("%s    %s\n", labelStyle.Render("Total:"), order.TotalPrice.StringFixed(2)))
	b.WriteString("\n")
	b.WriteString("Press q to close")
	return b.String()
}
