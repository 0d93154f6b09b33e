package graphs

import (
	"container/heap"
	"fmt"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// Prim grows a minimum spanning tree from the start node, or from the
// lexicographically first node when none is given. Only the start node's
// component is spanned. The result value is the tree weight.
func Prim(in model.GraphInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		g := in.Graph.Undirected()
		nodes := g.Nodes()
		complexity := trace.Complexity{Time: "O(E log V)", Space: "O(V + E)"}

		start := in.StartNode
		if start == "" && len(nodes) > 0 {
			start = nodes[0]
		}

		visited := map[string]bool{start: true}
		mst := make([]Edge, 0, len(nodes))
		weight := 0.0

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized Prim's algorithm starting at %s", start), trace.Payload{
			"visited":    sortedKeys(visited),
			"mst_edges":  mst,
			"graph":      in.Graph.Plain(),
			"start_node": start,
		})

		pq := &edgeQueue{}
		push := func(from string) {
			for _, to := range g.Neighbors(from) {
				if visited[to] {
					continue
				}
				w := g[from][to]
				heap.Push(pq, Edge{U: from, V: to, Weight: w})
				rec.Record(trace.KindHighlight, fmt.Sprintf("Added edge %s->%s (weight %g) to PQ", from, to, w), trace.Payload{
					"current_node":      from,
					"checking_neighbor": to,
					"edge_weight":       w,
				})
			}
		}
		if _, ok := g[start]; ok {
			push(start)
		}

		for pq.Len() > 0 {
			e := heap.Pop(pq).(Edge)
			if visited[e.V] {
				continue
			}

			rec.Record(trace.KindPick, fmt.Sprintf("Selected edge %s->%s (weight %g) for MST", e.U, e.V, e.Weight), trace.Payload{
				"u": e.U, "v": e.V, "weight": e.Weight,
			})

			visited[e.V] = true
			mst = append(mst, e)
			weight += e.Weight

			rec.Record(trace.KindUpdate, fmt.Sprintf("Included node %s in MST. Total weight: %g", e.V, weight), trace.Payload{
				"visited":   sortedKeys(visited),
				"mst_edges": mst,
				"node":      e.V,
			})

			push(e.V)
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("MST has %d edge(s) with total weight %g", len(mst), weight), trace.Payload{
			"mst_edges": mst, "total_weight": weight,
		})

		return trace.Outcome{Value: weight, Complexity: complexity}
	})
}
