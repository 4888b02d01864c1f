// Package app hosts the Bubble Tea program for the reminder TUI.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MamangRust/reminder/pkg/reminder"
	"github.com/MamangRust/reminder/pkg/store"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeDelete
)

const numFields = 3

// tickMsg drives the periodic repaint so the screen stays fresh without
// input.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the UI state machine. All mutation happens on the program
// goroutine; store calls are made synchronously from Update. The cached
// reminder list is refreshed only by the UI's own successful mutations,
// never by watcher activity.
type Model struct {
	persistence store.Persistence

	mode      mode
	reminders []reminder.Reminder
	selected  int

	inputs [numFields]textinput.Model
	focus  int

	errMsg string

	width  int
	height int
}

// New builds the model from a startup snapshot of the store.
func New(p store.Persistence, reminders []reminder.Reminder) Model {
	m := Model{
		persistence: p,
		mode:        modeList,
		reminders:   reminders,
	}

	placeholders := [numFields]string{"Title", "Description", "HH:MM"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeDelete:
			return m.updateDelete(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.startForm(modeAdd)
	case "e":
		if len(m.reminders) > 0 {
			// The edit form starts blank rather than pre-filled with the
			// selected reminder. Kept as-is; see DESIGN.md.
			m.startForm(modeEdit)
		}
	case "d":
		if len(m.reminders) > 0 {
			m.mode = modeDelete
		}
	case "up":
		m.prev()
	case "down":
		m.next()
	}
	return m, nil
}

// prev moves the selection up one row, wrapping to the bottom.
func (m *Model) prev() {
	if len(m.reminders) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.reminders)) % len(m.reminders)
}

// next moves the selection down one row, wrapping to the top.
func (m *Model) next() {
	if len(m.reminders) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.reminders)
}

// startForm clears the draft inputs and error line and focuses the first
// field.
func (m *Model) startForm(to mode) {
	m.mode = to
	m.errMsg = ""
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) cycleFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + numFields) % numFields
	m.inputs[m.focus].Focus()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := m.inputs[0].Value()
	description := m.inputs[1].Value()
	timeOfDay := m.inputs[2].Value()

	if err := reminder.ValidateDraft(title, description, timeOfDay); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	// A store failure leaves the form open with no message; the operation is
	// simply not taken.
	switch m.mode {
	case modeAdd:
		r, err := m.persistence.Add(title, description, timeOfDay)
		if err != nil {
			return m, nil
		}
		m.reminders = append(m.reminders, *r)
		m.mode = modeList
		m.errMsg = ""

	case modeEdit:
		if m.selected >= len(m.reminders) {
			return m, nil
		}
		sel := &m.reminders[m.selected]
		if err := m.persistence.Update(sel.ID, title, description, timeOfDay); err != nil {
			return m, nil
		}
		sel.Title = title
		sel.Description = description
		sel.Time = timeOfDay
		m.mode = modeList
		m.errMsg = ""
	}

	return m, nil
}

func (m Model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.selected < len(m.reminders) {
			id := m.reminders[m.selected].ID
			if err := m.persistence.Delete(id); err == nil {
				m.reminders = append(m.reminders[:m.selected], m.reminders[m.selected+1:]...)
				if m.selected > 0 && m.selected >= len(m.reminders) {
					m.selected--
				}
				m.mode = modeList
			}
		}
	case "n", "esc":
		m.mode = modeList
	}
	return m, nil
}
