package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/MamangRust/reminder/pkg/store"
)

var dbOverride string

// New assembles the root command. Running it without a subcommand opens the
// TUI.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: base.Wrap80("Daily wall-clock reminders in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&dbOverride, "db", "", "Path to the sqlite database. Overrides config.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDelete(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// loadConfig resolves the viper config plus the --db override.
func loadConfig() (store.Config, string, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	path := cfg.DBPath()
	if dbOverride != "" {
		path = dbOverride
	}
	return cfg, path, nil
}
