// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/QDoussot/advent-of-code-2022/runner"
)

func newAllCmd(opts *globalOpts) *cobra.Command {
	var (
		example bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve both parts of every implemented day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := runner.New(opts.registry(),
				runner.WithLogger(opts.logger),
				runner.WithInputsDir(opts.inputsDir),
				runner.WithExample(example),
				runner.WithPoolSize(workers),
				runner.WithDebug(opts.logger.IsLevelEnabled(logrus.DebugLevel)),
			)

			results, err := r.RunAll(cmd.Context())
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "day %2d: failed\n", res.Day)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d: %s | %s\n", res.Day, res.PartOne, res.PartTwo)
			}

			return err
		},
	}

	cmd.Flags().BoolVarP(&example, "example", "e", false, "use the example inputs")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of days solved concurrently")

	return cmd
}
