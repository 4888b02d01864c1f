package reminder

import (
	"fmt"
)

// Reminder pairs a daily wall-clock minute with a title and description.
// Time is the zero-padded 24-hour "HH:MM" form and recurs every day at that
// minute; CreatedAt is an RFC3339 timestamp kept for audit only.
type Reminder struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	CreatedAt   string `json:"created_at"`
}

func New(title, description, timeOfDay string) *Reminder {
	return &Reminder{
		Title:       title,
		Description: description,
		Time:        timeOfDay,
	}
}

// Row returns the reminder as table columns: id, time, title, description,
// created.
func (r *Reminder) Row() (string, string, string, string, string) {
	return fmt.Sprintf("%d", r.ID), r.Time, r.Title, r.Description, r.CreatedAt
}

func (r *Reminder) String() string {
	return fmt.Sprintf("%s  %s - %s", r.Time, r.Title, r.Description)
}
