package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MamangRust/reminder/pkg/reminder"
)

// Persistence defines the storage contract for reminders. The sqlite Store
// is the only production implementation; the UI and watcher are written
// against this interface so tests can substitute fakes.
type Persistence interface {
	Add(title, description, timeOfDay string) (*reminder.Reminder, error)
	List() ([]reminder.Reminder, error)
	Update(id int64, title, description, timeOfDay string) error
	Delete(id int64) error
	Close() error
}

// Store is a sqlite-backed Persistence.
type Store struct {
	db *sql.DB
}

var _ Persistence = (*Store)(nil)

// Open opens (or creates) the sqlite database at path and ensures the
// reminders table exists. Every caller gets its own connection; the UI and
// the watcher never share a handle.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Two process-local connections may touch the file at once.
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := createTable(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			time        TEXT NOT NULL,
			created_at  TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new reminder and returns it with the assigned id and
// creation timestamp.
func (s *Store) Add(title, description, timeOfDay string) (*reminder.Reminder, error) {
	now := time.Now().Format(time.RFC3339)

	res, err := s.db.Exec(`
		INSERT INTO reminders (title, description, time, created_at)
		VALUES (?, ?, ?, ?)
	`, title, description, timeOfDay, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	return &reminder.Reminder{
		ID:          id,
		Title:       title,
		Description: description,
		Time:        timeOfDay,
		CreatedAt:   now,
	}, nil
}

// List returns every reminder ordered by time of day ascending. Zero-padded
// HH:MM sorts lexicographically in chronological order. An empty store
// yields an empty list, not an error.
func (s *Store) List() ([]reminder.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, time, created_at
		FROM reminders ORDER BY time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var out []reminder.Reminder
	for rows.Next() {
		var r reminder.Reminder
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Time, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminders: %w", err)
	}
	return out, nil
}

// Update overwrites the three mutable fields of the reminder with the given
// id. A missing id is a silent no-op; callers confirm existence themselves.
func (s *Store) Update(id int64, title, description, timeOfDay string) error {
	_, err := s.db.Exec(`
		UPDATE reminders SET title = ?, description = ?, time = ? WHERE id = ?
	`, title, description, timeOfDay, id)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}

// Delete removes the reminder with the given id. A missing id is a silent
// no-op.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
