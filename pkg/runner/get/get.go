package get

import (
	"context"

	"github.com/MamangRust/reminder/pkg/printers"
	"github.com/MamangRust/reminder/pkg/store"
)

// Get lists every stored reminder, ordered by time of day.
type Get struct {
	ShowCreated bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	reminders, err := g.Persistence.List()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowCreated: g.ShowCreated}
	pp.TitleWithCount("reminders", len(reminders))
	pp.Reminders(reminders...)
	return nil
}
