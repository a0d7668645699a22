// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/QDoussot/advent-of-code-2022/problem"
)

func newSolveCmd(opts *globalOpts) *cobra.Command {
	var (
		input   string
		example bool
	)

	cmd := &cobra.Command{
		Use:   "solve <day> <part>",
		Short: "Solve a part of a day's puzzle",
		Long: `Solve a part of a day's puzzle.

Part 0 dumps the parsed input instead of solving it.
The input is read from <inputs-dir>/<day>, or <inputs-dir>/<day>.example with --example,
unless --input names a file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			part, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid part %q: %w", args[1], err)
			}

			if input == "" {
				input = problem.InputPath(opts.inputsDir, day, example)
			}
			lines, err := problem.ReadLines(input)
			if err != nil {
				return err
			}

			answer, err := opts.registry().Solve(cmd.Context(), day, part, lines)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overrides the inputs directory")
	cmd.Flags().BoolVarP(&example, "example", "e", false, "use the day's example input")
	cmd.MarkFlagsMutuallyExclusive("input", "example")

	return cmd
}
