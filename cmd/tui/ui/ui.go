// Package ui implements the Bubble Tea task picker used by `pymk tui`.
package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pymk/pymk/internal/tasks"
)

type taskItem struct {
	t tasks.Task
}

func (i taskItem) Title() string { return i.t.Name }

func (i taskItem) Description() string {
	if i.t.Summary == "" {
		return "(no description)"
	}
	return i.t.Summary
}

func (i taskItem) FilterValue() string { return i.t.Name }

// Model is the picker: a task list on the left, a detail viewport on the
// right. Selecting a task with enter quits the program; the caller reads
// the selection from Choice and runs it outside the TUI.
type Model struct {
	list   list.Model
	vp     viewport.Model
	reg    *tasks.Registry
	choice string
	width  int
	height int
}

// NewModel constructs the picker model over the given registry. Tasks
// without a summary are management details and are not listed.
func NewModel(reg *tasks.Registry) *Model {
	items := make([]list.Item, 0)
	for _, n := range reg.Names() {
		t, _ := reg.Get(n)
		if t.Summary == "" {
			continue
		}
		items = append(items, taskItem{t: t})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "pymk workflow tasks"
	l.SetShowStatusBar(false)

	vp := viewport.New(0, 0)

	m := &Model{list: l, vp: vp, reg: reg}
	m.vp.SetContent(m.detailContent())
	return m
}

// Choice returns the selected task name, or "" when the user quit
// without picking one.
func (m *Model) Choice() string { return m.choice }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := msg.Width / 2
		m.list.SetSize(listWidth, msg.Height-2)
		m.vp.Width = msg.Width - listWidth - 4
		m.vp.Height = msg.Height - 4
		m.vp.SetContent(m.detailContent())
		return m, nil
	case tea.KeyMsg:
		// Don't intercept keys while the list filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(taskItem); ok {
				m.choice = it.t.Name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.vp.SetContent(m.detailContent())
	return m, cmd
}
