package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipp01105/filelog/internal/watcher"
)

func (a *app) newFollowCmd() *cobra.Command {
	var fromStart bool

	cmd := &cobra.Command{
		Use:   "follow [path]",
		Short: "Print entries as they are appended to a log file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.v.GetString("path")
			if len(args) == 1 {
				path = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watcher.Follow(ctx, path, cmd.OutOrStdout(), watcher.Options{
				FromStart:   fromStart,
				Diagnostics: a.diag,
			})
		},
	}

	cmd.Flags().BoolVar(&fromStart, "from-start", false, "print the existing content first")
	return cmd
}
