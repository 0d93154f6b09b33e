package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awmpietro/algoviz/internal/strategy"
	"github.com/awmpietro/algoviz/internal/trace"
	"github.com/awmpietro/algoviz/internal/trace/filter"
)

// filteredResult mirrors trace.Result with the step list narrowed by --where.
type filteredResult struct {
	Steps         []filter.Indexed `json:"steps"`
	ResultValue   float64          `json:"result_value"`
	SelectedItems []int            `json:"selected_items"`
	Metrics       trace.Metrics    `json:"metrics"`
}

func newSolveCmd() *cobra.Command {
	var (
		file   string
		where  string
		start  string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "solve <family> [variant]",
		Short: "Solve one input and print the result envelope",
		Example: `  algoviz solve knapsack dp -f items.json --pretty
  algoviz solve kruskals -f graph.dot --where 'kind == "pick"'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, variant := args[0], ""
			if len(args) == 2 {
				variant = args[1]
			}

			pred, err := filter.Compile(where)
			if err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			var res *trace.Result
			if strategy.IsGraph(strategy.Family(family)) && (isDOT(file) || start != "") {
				alg, err := strategy.Resolve(family, variant)
				if err != nil {
					return err
				}
				in, err := readGraphInput(cmd, file, start)
				if err != nil {
					return err
				}
				res, err = svc.Run(cmd.Context(), alg, in)
				if err != nil {
					return err
				}
			} else {
				if isDOT(file) {
					return fmt.Errorf("DOT input is only accepted by graph algorithms")
				}
				body, err := readInput(cmd, file)
				if err != nil {
					return err
				}
				res, err = svc.Solve(cmd.Context(), family, variant, body)
				if err != nil {
					return err
				}
			}

			if where == "" {
				return writeJSON(cmd.OutOrStdout(), res, pretty)
			}
			return writeJSON(cmd.OutOrStdout(), filteredResult{
				Steps:         filter.Apply(res.Steps, pred),
				ResultValue:   res.ResultValue,
				SelectedItems: res.SelectedItems,
				Metrics:       res.Metrics,
			}, pretty)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file: JSON request body, or .dot for graph algorithms (- for stdin)")
	cmd.Flags().StringVar(&where, "where", "", "only print steps matching this expression")
	cmd.Flags().StringVar(&start, "start", "", "start node for graph algorithms")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}
