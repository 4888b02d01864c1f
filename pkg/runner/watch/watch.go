package watch

import (
	"context"
	"log"
	"time"

	"github.com/MamangRust/reminder/pkg/notify"
	"github.com/MamangRust/reminder/pkg/store"
	"github.com/MamangRust/reminder/pkg/watch"
)

// Watch runs the notification loop in the foreground, without the TUI.
type Watch struct {
	DBPath   string
	Interval time.Duration
	Timeout  time.Duration
	Sink     notify.Sink
}

func (w *Watch) Do(ctx context.Context) error {
	watcher := &watch.Watcher{
		Open:     func() (store.Persistence, error) { return store.Open(w.DBPath) },
		Sink:     w.Sink,
		Seen:     watch.NewDedup(),
		Interval: w.Interval,
		Timeout:  w.Timeout,
	}

	interval := w.Interval
	if interval <= 0 {
		interval = watch.DefaultInterval
	}
	log.Printf("[watch] checking %s every %s", w.DBPath, interval)

	watcher.Run(ctx)
	return nil
}
