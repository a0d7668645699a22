// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDaysCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range opts.registry().Days() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), day); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
