// Package notify delivers reminder notifications to the user.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/gen2brain/beeep"
)

// Sink delivers one notification. Implementations must be safe to call from
// the watcher goroutine.
type Sink interface {
	Send(summary, body string, timeout time.Duration) error
}

// Desktop sends OS desktop notifications. The timeout is advisory: platforms
// that do not take a per-notification timeout keep their own default.
type Desktop struct{}

func (Desktop) Send(summary, body string, timeout time.Duration) error {
	return beeep.Notify(summary, body, "")
}

// Writer prints notifications to w, one per line. Used by the headless
// watch command and in tests.
type Writer struct {
	W io.Writer
}

func (s Writer) Send(summary, body string, timeout time.Duration) error {
	_, err := fmt.Fprintf(s.W, "%s: %s\n", summary, body)
	return err
}
