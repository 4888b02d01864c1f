package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MamangRust/reminder/pkg/runner/del"
	"github.com/MamangRust/reminder/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete a reminder by id",
		Example: `
reminder delete 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			_, path, err := loadConfig()
			if err != nil {
				return err
			}

			p, err := store.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer p.Close()

			d := del.Del{
				ID:          id,
				Persistence: p,
			}
			return d.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
