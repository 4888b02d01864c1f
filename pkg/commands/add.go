package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MamangRust/reminder/pkg/runner/add"
	"github.com/MamangRust/reminder/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	var title, description, timeOfDay string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a reminder without opening the UI",
		Example: `
reminder add --title standup --description "daily sync" --time 09:00
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := loadConfig()
			if err != nil {
				return err
			}

			p, err := store.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer p.Close()

			a := add.Add{
				Title:       title,
				Description: description,
				Time:        timeOfDay,
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Reminder title.")
	cmd.Flags().StringVarP(&description, "description", "m", "", "Reminder description.")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of day in 24-hour HH:MM form.")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("time")

	topLevel.AddCommand(cmd)
}
