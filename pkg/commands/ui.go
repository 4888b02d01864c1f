package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MamangRust/reminder/pkg/runner/ui"
	"github.com/MamangRust/reminder/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive reminder list",
		Example: `
reminder ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("refusing to start the UI: stdout is not a terminal")
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer p.Close()

	u := ui.UI{
		Persistence: p,
		DBPath:      path,
		Interval:    cfg.PollInterval(),
		Timeout:     cfg.NotifyTimeout(),
	}
	return u.Do(cmd.Context())
}
