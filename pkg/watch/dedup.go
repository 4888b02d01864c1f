package watch

import "sync"

// Dedup tracks which reminder ids have already produced a notification in
// this process, so each id fires at most once per run. It grows for the
// life of the process. Reset exists so a caller could re-arm reminders for
// a new day; the shipped loop never calls it and a reminder therefore stays
// silent after its first notification.
type Dedup struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

func NewDedup() *Dedup {
	return &Dedup{seen: make(map[int64]struct{})}
}

// Has reports whether id has been marked.
func (d *Dedup) Has(id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[id]
	return ok
}

// Mark records id as notified.
func (d *Dedup) Mark(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[id] = struct{}{}
}

// Reset forgets every marked id.
func (d *Dedup) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[int64]struct{})
}

// Len reports how many ids have been marked.
func (d *Dedup) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
