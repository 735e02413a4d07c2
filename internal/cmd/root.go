// Package cmd implements the filelog command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/logger"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	diag    *zap.Logger
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own configuration instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), diag: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "filelog",
		Short: "Write, read and manage leveled log files",
		Long: `filelog appends leveled entries to log files. The file extension picks the
line format: .txt and .log for plain text, .csv for comma separated values and
.jsonl for JSON lines.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			// syncing a terminal stderr fails with EINVAL on most systems,
			// so the error is only shown when diagnostics were asked for
			if err := a.diag.Sync(); err != nil && a.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "diagnostics sync: %v\n", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default: $HOME/.filelog.yaml)")
	rootCmd.PersistentFlags().StringP("path", "p", "app.log", "default log file")
	rootCmd.PersistentFlags().String("timestamp-format", formatter.DefaultTimestampFormat, "Go time layout for timestamps")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print diagnostics to stderr")

	rootCmd.AddCommand(
		a.newCreateCmd(),
		a.newWriteCmd(),
		a.newReadCmd(),
		a.newRemoveCmd(),
		a.newBatchCmd(),
		a.newFollowCmd(),
		a.newLevelsCmd(),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".filelog")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FILELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("path", flags.Lookup("path")); err != nil {
		return err
	}
	if err := v.BindPFlag("timestamp_format", flags.Lookup("timestamp-format")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	diag, err := newDiagnostics(a.verbose)
	if err != nil {
		return err
	}
	a.diag = diag
	if used := v.ConfigFileUsed(); used != "" {
		a.diag.Debug("config loaded", zap.String("file", used))
	}
	return nil
}

func newDiagnostics(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// registry builds the level registry, honouring a "levels" map in the config.
func (a *app) registry() *core.Registry {
	levels := a.v.GetStringMapString("levels")
	if len(levels) == 0 {
		return core.DefaultRegistry()
	}
	tokens := make(map[core.Level]string, len(levels))
	for label, token := range levels {
		// viper lower-cases keys
		tokens[core.Level(strings.ToUpper(label))] = token
	}
	return core.NewRegistry(tokens)
}

func (a *app) newLogger() *logger.FileLogger {
	return logger.NewBuilder().
		WithPath(a.v.GetString("path")).
		WithRegistry(a.registry()).
		WithFormatterConfig(formatter.Config{TimestampFormat: a.v.GetString("timestamp_format")}).
		WithDiagnostics(a.diag).
		Build()
}
