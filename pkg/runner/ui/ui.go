package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MamangRust/reminder/pkg/notify"
	"github.com/MamangRust/reminder/pkg/store"
	"github.com/MamangRust/reminder/pkg/tui/app"
	"github.com/MamangRust/reminder/pkg/watch"
)

// UI opens the interactive reminder list and starts the background
// notification watcher. The watcher opens its own store handles; the TUI
// keeps the one handed in here for its whole run.
type UI struct {
	Persistence store.Persistence
	DBPath      string
	Interval    time.Duration
	Timeout     time.Duration
}

func (u *UI) Do(ctx context.Context) error {
	reminders, err := u.Persistence.List()
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher := &watch.Watcher{
		Open:     func() (store.Persistence, error) { return store.Open(u.DBPath) },
		Sink:     notify.Desktop{},
		Seen:     watch.NewDedup(),
		Interval: u.Interval,
		Timeout:  u.Timeout,
	}
	go watcher.Run(ctx)

	m := app.New(u.Persistence, reminders)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
