package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MamangRust/reminder/pkg/notify"
	watchrunner "github.com/MamangRust/reminder/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	var noDesktop bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "run the notification watcher in the foreground",
		Example: `
reminder watch
reminder watch --no-desktop
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig()
			if err != nil {
				return err
			}

			var sink notify.Sink = notify.Desktop{}
			if noDesktop {
				sink = notify.Writer{W: os.Stdout}
			}

			w := watchrunner.Watch{
				DBPath:   path,
				Interval: cfg.PollInterval(),
				Timeout:  cfg.NotifyTimeout(),
				Sink:     sink,
			}
			return w.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&noDesktop, "no-desktop", false, "Print notifications to stdout instead of the desktop.")

	topLevel.AddCommand(cmd)
}
