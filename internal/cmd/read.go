package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/internal/output"
)

func (a *app) newReadCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "read [path]",
		Short: "Print a log file",
		Long: `Print a log file. Text and CSV files are printed as they are; JSON-lines
files are decoded and printed as colorized text, or as JSON with --output json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			content, err := a.newLogger().Read(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if content.Kind != formatter.KindJSONL {
				_, err := io.WriteString(out, content.Text)
				return err
			}

			r := output.New(format, out)
			for _, rec := range content.Records {
				if err := r.Render(rec); err != nil {
					return fmt.Errorf("render error: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format for JSON-lines files: text, json")
	return cmd
}
