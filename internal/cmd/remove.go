package cmd

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [pattern...]",
		Short: "Remove log files",
		Long: `Remove log files. Each argument may be a literal path or a glob pattern
such as "logs/**/*.jsonl". Without arguments the default log file is removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.newLogger()
			if len(args) == 0 {
				return l.Remove("")
			}

			var errs error
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", pattern, err))
					continue
				}
				// a literal path with no match still goes to Remove so the
				// missing file is reported
				if len(matches) == 0 {
					matches = []string{pattern}
				}
				for _, path := range matches {
					if err := l.Remove(path); err != nil {
						errs = multierr.Append(errs, err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
				}
			}
			return errs
		},
	}
}
