package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/awmpietro/algoviz/internal/strategy"
	"github.com/awmpietro/algoviz/internal/trace"
)

func newCompareCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "compare <family>",
		Short: "Run the dp and greedy variants of a family on the same input",
		Long: `Runs both variants concurrently and prints their values side by side.
Greedy coin change and 0/1 knapsack are not always optimal; this shows where.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]
			variants := strategy.Variants(strategy.Family(family))
			if len(variants) < 2 {
				return fmt.Errorf("%s has no dp/greedy pair to compare", family)
			}

			body, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}

			results := make([]*trace.Result, len(variants))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, v := range variants {
				g.Go(func() error {
					res, err := svc.Solve(ctx, family, string(v), body)
					if err != nil {
						return fmt.Errorf("%s/%s: %w", family, v, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VARIANT\tVALUE\tSELECTED\tSTEPS\tTIME")
			for i, v := range variants {
				r := results[i]
				fmt.Fprintf(tw, "%s\t%g\t%v\t%d\t%s\n", v, r.ResultValue, r.SelectedItems, r.Metrics.StepCount, r.Metrics.TimeComplexity)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body (- for stdin)")
	return cmd
}
