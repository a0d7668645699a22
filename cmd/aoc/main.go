// SPDX-License-Identifier: MIT

// Command aoc solves the Advent of Code 2022 puzzles.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/QDoussot/advent-of-code-2022/days"
	"github.com/QDoussot/advent-of-code-2022/parse"
	"github.com/QDoussot/advent-of-code-2022/problem"
)

const (
	logMaxSize    = 10 // megabytes
	logMaxBackups = 3
	logMaxAge     = 28 // days
)

// globalOpts holds the persistent flags shared by every command.
type globalOpts struct {
	inputsDir string
	logLevel  string
	logFile   string

	logger *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Solve the Advent of Code 2022 puzzles",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogger(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.inputsDir, "inputs-dir", problem.DefaultInputsDir, "directory holding the puzzle inputs")
	flags.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "log level")
	flags.StringVar(&opts.logFile, "log-file", "", "rotated log file, logs to stderr when empty")

	rootCmd.AddCommand(newSolveCmd(opts))
	rootCmd.AddCommand(newAllCmd(opts))
	rootCmd.AddCommand(newDaysCmd(opts))

	return rootCmd
}

// setupLogger configures the logger shared by the registry, runner & parsers.
func (o *globalOpts) setupLogger(stderr io.Writer) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	o.logger.SetLevel(level)

	o.logger.SetOutput(stderr)
	if o.logFile != "" {
		o.logger.SetOutput(&lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
		})
	}
	parse.SetLogger(o.logger)

	return nil
}

func (o *globalOpts) registry() *problem.Registry {
	return days.Default(
		problem.WithLogger(o.logger),
		problem.WithDebug(o.logger.IsLevelEnabled(logrus.DebugLevel)),
	)
}
