package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/logger"
)

func (a *app) newWriteCmd() *cobra.Command {
	var (
		level     string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "write message...",
		Short: "Append one entry to the log file",
		Long: `Append one entry to the log file. The arguments are joined with spaces
to form the message.

Examples:
  filelog write "service started"
  filelog -p events.jsonl write --level error "disk full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := core.Entry{
				Level:   logger.ParseLevel(level),
				Message: strings.Join(args, " "),
			}
			return a.newLogger().Write(entry, logger.WriteOptions{Overwrite: overwrite})
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "entry level")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the file content instead of appending")
	return cmd
}
