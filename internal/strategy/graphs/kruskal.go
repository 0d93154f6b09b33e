package graphs

import (
	"fmt"
	"sort"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// Kruskal builds a minimum spanning forest. Each undirected pair is one edge
// (u < v); edges are taken by (weight, u, v) and every one of them gets a
// pick or reject step. The result value is the forest weight.
func Kruskal(in model.GraphInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		g := in.Graph.Undirected()
		nodes := g.Nodes()

		edges := make([]Edge, 0)
		for _, u := range nodes {
			for _, v := range g.Neighbors(u) {
				if u < v {
					edges = append(edges, Edge{U: u, V: v, Weight: g[u][v]})
				}
			}
		}
		sort.SliceStable(edges, func(i, j int) bool { return edges[i].less(edges[j]) })

		rec.Record(trace.KindSort, fmt.Sprintf("Sorted %d edges by weight", len(edges)), trace.Payload{
			"edges": edges,
			"graph": in.Graph.Plain(),
		})

		uf := newUnionFind(nodes)
		mst := make([]Edge, 0, len(nodes))
		weight := 0.0

		for _, e := range edges {
			rec.Record(trace.KindHighlight, fmt.Sprintf("Checking edge %s-%s (weight %g)", e.U, e.V, e.Weight), trace.Payload{
				"u": e.U, "v": e.V, "weight": e.Weight,
				"current_node": e.U, "checking_neighbor": e.V,
			})

			if !uf.union(e.U, e.V) {
				rec.Record(trace.KindReject, fmt.Sprintf("Skipped edge %s-%s. Cycle detected.", e.U, e.V), trace.Payload{
					"u": e.U, "v": e.V, "weight": e.Weight, "mst_edges": mst,
				})
				continue
			}

			mst = append(mst, e)
			weight += e.Weight
			rec.Record(trace.KindPick, fmt.Sprintf("Added edge %s-%s to MST. No cycle detected.", e.U, e.V), trace.Payload{
				"u": e.U, "v": e.V, "weight": e.Weight, "mst_edges": mst,
			})
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("MST has %d edge(s) with total weight %g", len(mst), weight), trace.Payload{
			"mst_edges": mst, "total_weight": weight,
		})

		return trace.Outcome{
			Value:      weight,
			Complexity: trace.Complexity{Time: "O(E log E)", Space: "O(V + E)"},
		}
	})
}
