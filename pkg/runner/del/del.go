package del

import (
	"context"

	"github.com/MamangRust/reminder/pkg/printers"
	"github.com/MamangRust/reminder/pkg/store"
)

// Del removes a reminder by id. A missing id is a silent no-op, matching
// the store contract.
type Del struct {
	ID int64

	Persistence store.Persistence
}

func (d *Del) Do(ctx context.Context) error {
	if err := d.Persistence.Delete(d.ID); err != nil {
		return err
	}

	remaining, err := d.Persistence.List()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("reminders", len(remaining))
	pp.Reminders(remaining...)
	return nil
}
