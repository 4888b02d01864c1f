package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

func (m Model) View() string {
	switch m.mode {
	case modeAdd:
		return m.formView("Add Reminder")
	case modeEdit:
		return m.formView("Edit Reminder")
	case modeDelete:
		return m.deleteView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reminders"))
	b.WriteString("\n\n")

	if len(m.reminders) == 0 {
		b.WriteString(faintStyle.Render("  no reminders yet, press a to add one"))
		b.WriteString("\n")
	}

	for i := range m.reminders {
		line := "  " + m.reminders[i].String()
		if i == m.selected {
			line = selectedStyle.Render("> " + m.reminders[i].String())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine(
		"q", "quit",
		"a", "add",
		"e", "edit",
		"d", "delete",
		"up/down", "navigate",
	))
	return b.String()
}

func (m Model) formView(heading string) string {
	labels := [numFields]string{"Title:", "Description:", "Time (HH:MM):"}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine(
		"tab", "next field",
		"shift+tab", "prev field",
		"enter", "save",
		"esc", "cancel",
	))
	return b.String()
}

func (m Model) deleteView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete Reminder"))
	b.WriteString("\n\n")

	if m.selected < len(m.reminders) {
		r := m.reminders[m.selected]
		b.WriteString(fmt.Sprintf("  delete %q at %s?\n", r.Title, r.Time))
	}

	b.WriteString("\n")
	b.WriteString(helpLine("y", "confirm", "n/esc", "cancel"))
	return b.String()
}

// helpLine renders key/action pairs as the bottom help row.
func helpLine(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+" "+faintStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, faintStyle.Render(" | "))
}
