package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/MamangRust/reminder/pkg/reminder"
)

type PrettyPrint struct {
	ShowCreated bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" reminder")
	default:
		_, _ = c.Println(" reminders")
	}
}

// Reminders renders the given reminders as a table, in the order given.
func (pp *PrettyPrint) Reminders(reminders ...reminder.Reminder) {
	if len(reminders) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 50

	if pp.ShowCreated {
		tbl.AddRow("ID", "TIME", "TITLE", "DESCRIPTION", "CREATED")
	} else {
		tbl.AddRow("ID", "TIME", "TITLE", "DESCRIPTION")
	}

	for i := range reminders {
		id, tod, title, desc, created := reminders[i].Row()
		if pp.ShowCreated {
			tbl.AddRow(id, tod, title, desc, created)
		} else {
			tbl.AddRow(id, tod, title, desc)
		}
	}

	fmt.Println(tbl)
}
