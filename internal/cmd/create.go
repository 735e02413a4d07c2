package cmd

import (
	"github.com/spf13/cobra"

	"github.com/philipp01105/filelog/logger"
)

func (a *app) newCreateCmd() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "create [path]",
		Short: "Create an empty log file and its parent directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := logger.CreateOptions{KeepExisting: keep}
			if len(args) == 1 {
				opts.Path = args[0]
			}
			return a.newLogger().Create(opts)
		},
	}

	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "leave an existing file untouched")
	return cmd
}
