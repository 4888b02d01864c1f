// Package watch polls the store and fires desktop notifications when a
// reminder's wall-clock minute arrives.
package watch

import (
	"context"
	"log"
	"time"

	"github.com/MamangRust/reminder/pkg/notify"
	"github.com/MamangRust/reminder/pkg/store"
)

// DefaultInterval is the poll cadence between store checks.
const DefaultInterval = 30 * time.Second

// Watcher compares the current HH:MM against every stored reminder and
// sends at most one notification per reminder id per process run. Each
// cycle opens a fresh store handle; every failure is logged and the cycle
// skipped, so a transient storage or delivery problem never stops the loop.
type Watcher struct {
	Open     func() (store.Persistence, error)
	Sink     notify.Sink
	Seen     *Dedup
	Interval time.Duration
	Timeout  time.Duration

	// Now is the clock. Tests pin it; nil means time.Now.
	Now func() time.Time
	// Log receives cycle errors. Nil means the standard logger.
	Log *log.Logger
}

// Run checks once per interval until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check runs a single poll cycle.
func (w *Watcher) Check() {
	p, err := w.Open()
	if err != nil {
		w.logf("failed to open store: %v", err)
		return
	}
	defer p.Close()

	reminders, err := p.List()
	if err != nil {
		w.logf("failed to list reminders: %v", err)
		return
	}

	current := w.now().Format("15:04")
	for _, r := range reminders {
		if r.Time != current || w.Seen.Has(r.ID) {
			continue
		}
		if err := w.Sink.Send(r.Title, r.Description, w.Timeout); err != nil {
			// Leave the id unmarked so the next matching cycle retries.
			w.logf("failed to send notification: %v", err)
			continue
		}
		w.Seen.Mark(r.ID)
	}
}

func (w *Watcher) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Watcher) logf(format string, args ...any) {
	if w.Log != nil {
		w.Log.Printf(format, args...)
		return
	}
	log.Printf("[watch] "+format, args...)
}
