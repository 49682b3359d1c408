package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	detailPaneStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	left := m.list.View()
	right := detailPaneStyle.Render(m.vp.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	hint := hintStyle.Render("enter: run  /: filter  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, hint)
}

// detailContent renders the selected task's summary, dependencies, and
// command sequence for the right-hand pane.
func (m *Model) detailContent() string {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return "no task selected"
	}
	t := it.t

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(t.Name))
	b.WriteString("\n\n")
	if t.Summary != "" {
		b.WriteString(t.Summary)
		b.WriteString("\n\n")
	}
	if len(t.Deps) > 0 {
		fmt.Fprintf(&b, "depends on: %s\n\n", strings.Join(t.Deps, ", "))
	}
	for i, c := range t.Commands {
		fmt.Fprintf(&b, "%d: %s\n", i+1, c)
	}
	if t.Confirm {
		b.WriteString("\nasks for confirmation before running\n")
	}
	return b.String()
}
