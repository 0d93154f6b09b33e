package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awmpietro/algoviz/internal/graphviz"
	"github.com/awmpietro/algoviz/internal/strategy"
	"github.com/awmpietro/algoviz/internal/strategy/graphs"
)

func newDotCmd() *cobra.Command {
	var (
		file     string
		algo     string
		start    string
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render a graph as DOT, highlighting the edges an algorithm picks",
		Example: `  algoviz dot -f graph.json --algo kruskals | dot -Tsvg > mst.svg
  algoviz dot -f graph.dot --algo dijkstra --start A`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readGraphInput(cmd, file, start)
			if err != nil {
				return err
			}

			var highlight []graphs.Edge
			if algo != "" {
				if !strategy.IsGraph(strategy.Family(algo)) {
					return fmt.Errorf("%s is not a graph algorithm", algo)
				}
				svc, err := newService()
				if err != nil {
					return err
				}
				res, err := svc.Run(cmd.Context(), strategy.Must(strategy.Family(algo), strategy.None), in)
				if err != nil {
					return err
				}
				highlight = graphviz.Highlighted(*res, in.Graph)
			}

			out, err := graphviz.Render(in.Graph, directed || algo == string(strategy.Dijkstra), highlight)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph as .dot or JSON request body (- for stdin)")
	cmd.Flags().StringVar(&algo, "algo", "", "prims, kruskals or dijkstra")
	cmd.Flags().StringVar(&start, "start", "", "start node")
	cmd.Flags().BoolVar(&directed, "directed", false, "render as a digraph")
	return cmd
}
