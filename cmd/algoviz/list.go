package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awmpietro/algoviz/internal/strategy"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alg := range strategy.Algorithms() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "/solve/%s\n", alg.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
