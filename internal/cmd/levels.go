package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the accepted levels and the token written for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := a.registry()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, level := range reg.Levels() {
				token, _ := reg.Token(level)
				fmt.Fprintf(tw, "%s\t%s\n", level, token)
			}
			return tw.Flush()
		},
	}
}
