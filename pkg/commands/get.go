package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MamangRust/reminder/pkg/runner/get"
	"github.com/MamangRust/reminder/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	var showCreated bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list reminders, ordered by time of day",
		Example: `
reminder get
reminder get --created
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

			g := get.Get{
				ShowCreated: showCreated,
				Persistence: p,
			}
			return g.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&showCreated, "created", false, "Also show the creation timestamp.")

	topLevel.AddCommand(cmd)
}
