package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MamangRust/reminder/pkg/reminder"
)

type fakePersistence struct {
	reminders []reminder.Reminder
	nextID    int64

	addCalls    int
	updateCalls int
	deleteCalls int

	lastUpdateID int64
	lastDeleteID int64

	err error
}

func (f *fakePersistence) Add(title, description, timeOfDay string) (*reminder.Reminder, error) {
	f.addCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	r := reminder.Reminder{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Time:        timeOfDay,
		CreatedAt:   "2026-01-02T15:04:05+07:00",
	}
	f.reminders = append(f.reminders, r)
	return &r, nil
}

func (f *fakePersistence) List() ([]reminder.Reminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reminders, nil
}

func (f *fakePersistence) Update(id int64, title, description, timeOfDay string) error {
	f.updateCalls++
	f.lastUpdateID = id
	return f.err
}

func (f *fakePersistence) Delete(id int64) error {
	f.deleteCalls++
	f.lastDeleteID = id
	return f.err
}

func (f *fakePersistence) Close() error { return nil }

func three() []reminder.Reminder {
	return []reminder.Reminder{
		{ID: 1, Title: "wake", Description: "up", Time: "06:30"},
		{ID: 2, Title: "standup", Description: "daily sync", Time: "09:00"},
		{ID: 3, Title: "lunch", Description: "eat", Time: "12:00"},
	}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNavigationWraps(t *testing.T) {
	m := New(&fakePersistence{}, three())

	m = press(t, m, key("up"))
	if m.selected != 2 {
		t.Fatalf("up from 0 should wrap to 2, got %d", m.selected)
	}
	m = press(t, m, key("down"))
	if m.selected != 0 {
		t.Fatalf("down from 2 should wrap to 0, got %d", m.selected)
	}
	m = press(t, m, key("down"))
	if m.selected != 1 {
		t.Fatalf("down from 0 should go to 1, got %d", m.selected)
	}
}

func TestNavigationEmptyListNoop(t *testing.T) {
	m := New(&fakePersistence{}, nil)

	m = press(t, m, key("up"))
	m = press(t, m, key("down"))
	if m.selected != 0 {
		t.Fatalf("navigation on empty list must stay at 0, got %d", m.selected)
	}
}

func TestQuitKey(t *testing.T) {
	m := New(&fakePersistence{}, nil)

	next, cmd := m.Update(key("q"))
	if _, ok := next.(Model); !ok {
		t.Fatalf("Update returned %T", next)
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestAddFlow(t *testing.T) {
	p := &fakePersistence{nextID: 10}
	m := New(p, nil)

	m = press(t, m, key("a"))
	if m.mode != modeAdd {
		t.Fatalf("expected add mode")
	}

	m = typeText(t, m, "standup")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "daily sync")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "09:00")
	m = press(t, m, key("enter"))

	if p.addCalls != 1 {
		t.Fatalf("expected one add call, got %d", p.addCalls)
	}
	if m.mode != modeList {
		t.Fatalf("expected return to list")
	}
	if len(m.reminders) != 1 || m.reminders[0].ID != 11 {
		t.Fatalf("expected new reminder appended to cache, got %+v", m.reminders)
	}
	if m.errMsg != "" {
		t.Fatalf("expected cleared error, got %q", m.errMsg)
	}
}

func TestAddEmptyDescriptionRejected(t *testing.T) {
	p := &fakePersistence{}
	m := New(p, nil)

	m = press(t, m, key("a"))
	m = typeText(t, m, "standup")
	m = press(t, m, key("tab"))
	m = press(t, m, key("tab"))
	m = typeText(t, m, "09:00")
	m = press(t, m, key("enter"))

	if p.addCalls != 0 {
		t.Fatalf("invalid draft must not reach the store")
	}
	if m.mode != modeAdd {
		t.Fatalf("expected to stay in the form")
	}
	if m.errMsg != reminder.MsgFieldsRequired {
		t.Fatalf("expected %q, got %q", reminder.MsgFieldsRequired, m.errMsg)
	}
}

func TestAddBadTimeRejected(t *testing.T) {
	p := &fakePersistence{}
	m := New(p, nil)

	m = press(t, m, key("a"))
	m = typeText(t, m, "standup")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "daily sync")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "9:00")
	m = press(t, m, key("enter"))

	if p.addCalls != 0 {
		t.Fatalf("invalid draft must not reach the store")
	}
	if m.errMsg != reminder.MsgBadTime {
		t.Fatalf("expected %q, got %q", reminder.MsgBadTime, m.errMsg)
	}
}

func TestAddStoreFailureStaysSilently(t *testing.T) {
	p := &fakePersistence{err: errors.New("disk full")}
	m := New(p, nil)

	m = press(t, m, key("a"))
	m = typeText(t, m, "standup")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "daily sync")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "09:00")
	m = press(t, m, key("enter"))

	if m.mode != modeAdd {
		t.Fatalf("store failure must leave the form open")
	}
	if m.errMsg != "" {
		t.Fatalf("store failure is swallowed, got %q", m.errMsg)
	}
	if len(m.reminders) != 0 {
		t.Fatalf("cache must not change on failure")
	}
}

func TestFormBackspaceAndCancel(t *testing.T) {
	m := New(&fakePersistence{}, nil)

	m = press(t, m, key("a"))
	m = typeText(t, m, "abc")
	m = press(t, m, key("backspace"))
	if got := m.inputs[0].Value(); got != "ab" {
		t.Fatalf("expected backspace to drop last rune, got %q", got)
	}

	m = press(t, m, key("esc"))
	if m.mode != modeList {
		t.Fatalf("esc must return to the list")
	}

	// Reopening the form discards the previous draft.
	m = press(t, m, key("a"))
	if got := m.inputs[0].Value(); got != "" {
		t.Fatalf("expected a fresh draft, got %q", got)
	}
}

func TestFormFocusCyclesBothWays(t *testing.T) {
	m := New(&fakePersistence{}, nil)

	m = press(t, m, key("a"))
	if m.focus != 0 || !m.inputs[0].Focused() {
		t.Fatalf("expected first field focused")
	}

	m = press(t, m, key("tab"))
	m = press(t, m, key("tab"))
	m = press(t, m, key("tab"))
	if m.focus != 0 {
		t.Fatalf("tab should cycle back to field 0, got %d", m.focus)
	}

	m = press(t, m, key("shift+tab"))
	if m.focus != 2 || !m.inputs[2].Focused() {
		t.Fatalf("shift+tab from 0 should wrap to 2, got %d", m.focus)
	}

	// Field text survives a round trip through the other fields.
	m = typeText(t, m, "09:00")
	m = press(t, m, key("tab"))
	m = press(t, m, key("shift+tab"))
	if got := m.inputs[2].Value(); got != "09:00" {
		t.Fatalf("expected draft preserved across focus changes, got %q", got)
	}
}

func TestEditRequiresReminders(t *testing.T) {
	m := New(&fakePersistence{}, nil)

	m = press(t, m, key("e"))
	if m.mode != modeList {
		t.Fatalf("edit on empty list must be a no-op")
	}
}

func TestEditFormStartsBlank(t *testing.T) {
	m := New(&fakePersistence{}, three())

	m = press(t, m, key("down"))
	m = press(t, m, key("e"))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
	for i := range m.inputs {
		if m.inputs[i].Value() != "" {
			t.Fatalf("edit form field %d must start blank, got %q", i, m.inputs[i].Value())
		}
	}
}

func TestEditRewritesSelectedInPlace(t *testing.T) {
	p := &fakePersistence{}
	m := New(p, three())

	m = press(t, m, key("down"))
	m = press(t, m, key("e"))
	m = typeText(t, m, "standup2")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "moved")
	m = press(t, m, key("tab"))
	m = typeText(t, m, "09:30")
	m = press(t, m, key("enter"))

	if p.updateCalls != 1 || p.lastUpdateID != 2 {
		t.Fatalf("expected update for id 2, got %d calls for id %d", p.updateCalls, p.lastUpdateID)
	}
	if m.mode != modeList {
		t.Fatalf("expected return to list")
	}
	got := m.reminders[1]
	if got.ID != 2 || got.Title != "standup2" || got.Description != "moved" || got.Time != "09:30" {
		t.Fatalf("cache entry not rewritten in place: %+v", got)
	}
	if m.reminders[0].Title != "wake" || m.reminders[2].Title != "lunch" {
		t.Fatalf("other cache entries must not change")
	}
}

func TestDeleteConfirm(t *testing.T) {
	p := &fakePersistence{}
	m := New(p, three())

	m = press(t, m, key("d"))
	if m.mode != modeDelete {
		t.Fatalf("expected delete mode")
	}
	m = press(t, m, key("y"))

	if p.deleteCalls != 1 || p.lastDeleteID != 1 {
		t.Fatalf("expected delete for id 1, got %d calls for id %d", p.deleteCalls, p.lastDeleteID)
	}
	if len(m.reminders) != 2 || m.reminders[0].ID != 2 {
		t.Fatalf("expected first entry removed, got %+v", m.reminders)
	}
	if m.selected != 0 || m.mode != modeList {
		t.Fatalf("expected selection 0 back in list, got %d", m.selected)
	}
}

func TestDeleteTailDecrementsSelection(t *testing.T) {
	m := New(&fakePersistence{}, three())

	m = press(t, m, key("up")) // wrap to the last entry
	m = press(t, m, key("d"))
	m = press(t, m, key("y"))

	if len(m.reminders) != 2 {
		t.Fatalf("expected 2 reminders left, got %d", len(m.reminders))
	}
	if m.selected != 1 {
		t.Fatalf("deleting the tail must decrement selection to 1, got %d", m.selected)
	}
}

func TestDeleteLastReminderKeepsSelectionZero(t *testing.T) {
	m := New(&fakePersistence{}, []reminder.Reminder{
		{ID: 1, Title: "only", Description: "one", Time: "10:00"},
	})

	m = press(t, m, key("d"))
	m = press(t, m, key("y"))

	if len(m.reminders) != 0 {
		t.Fatalf("expected empty list")
	}
	if m.selected != 0 {
		t.Fatalf("selection must stay at 0, got %d", m.selected)
	}
}

func TestDeleteCancel(t *testing.T) {
	p := &fakePersistence{}
	m := New(p, three())

	m = press(t, m, key("d"))
	m = press(t, m, key("n"))
	if m.mode != modeList || p.deleteCalls != 0 || len(m.reminders) != 3 {
		t.Fatalf("cancel must not touch the store or cache")
	}

	m = press(t, m, key("d"))
	m = press(t, m, key("esc"))
	if m.mode != modeList || p.deleteCalls != 0 {
		t.Fatalf("esc must cancel the delete")
	}
}

func TestDeleteStoreFailureKeepsEntry(t *testing.T) {
	p := &fakePersistence{err: errors.New("locked")}
	m := New(p, three())

	m = press(t, m, key("d"))
	m = press(t, m, key("y"))

	if len(m.reminders) != 3 {
		t.Fatalf("cache must not change when the store fails")
	}
	if m.mode != modeDelete {
		t.Fatalf("failed delete leaves the confirm open")
	}
}
