package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/logger"
)

// maxLineSize bounds a single stdin message in batch mode
const maxLineSize = 16 * 1024 * 1024

func (a *app) newBatchCmd() *cobra.Command {
	var (
		level     string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Buffer lines from stdin and write them in one go",
		Long: `Read messages from standard input, one per line, and write them to the
log file with a single write once input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := a.newLogger()
			buf := l.NewBuffer()
			lvl := logger.ParseLevel(level)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			for scanner.Scan() {
				if err := buf.Push(core.Entry{Level: lvl, Message: scanner.Text()}); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			n := buf.Len()
			if err := buf.Write(logger.BufferWriteOptions{Overwrite: overwrite}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d entries to %s\n", n, l.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "level for every entry")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the file content instead of appending")
	return cmd
}
