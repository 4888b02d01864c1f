package add

import (
	"context"

	"github.com/MamangRust/reminder/pkg/printers"
	"github.com/MamangRust/reminder/pkg/reminder"
	"github.com/MamangRust/reminder/pkg/store"
)

// Add creates one reminder from the command line.
type Add struct {
	Title       string
	Description string
	Time        string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if err := reminder.ValidateDraft(n.Title, n.Description, n.Time); err != nil {
		return err
	}

	r, err := n.Persistence.Add(n.Title, n.Description, n.Time)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("added")
	pp.Reminders(*r)
	return nil
}
