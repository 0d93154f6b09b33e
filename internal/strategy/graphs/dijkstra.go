package graphs

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

// Dijkstra computes shortest distances from the start node over the directed
// graph as given. A start node missing from the graph leaves every node
// unreachable. The result value is the number of reachable nodes, start
// included.
func Dijkstra(in model.GraphInput) trace.Result {
	return trace.Run(func(rec *trace.Recorder) trace.Outcome {
		g, start := in.Graph, in.StartNode
		nodes := g.Nodes()

		dist := make(map[string]float64, len(nodes))
		pred := make(map[string]string, len(nodes))
		for _, n := range nodes {
			dist[n] = math.Inf(1)
		}
		present := g.Has(start)
		if present {
			dist[start] = 0
		}

		rec.Record(trace.KindInit, fmt.Sprintf("Initialized Dijkstra from node %s", start), trace.Payload{
			"distances":  distanceView(nodes, dist),
			"visited":    []string{},
			"graph":      g.Plain(),
			"start_node": start,
		})

		visited := make(map[string]bool, len(nodes))
		pq := &distQueue{}
		if present {
			heap.Push(pq, distItem{node: start, dist: 0})
		}

		for pq.Len() > 0 {
			cur := heap.Pop(pq).(distItem)
			if visited[cur.node] || cur.dist > dist[cur.node] {
				continue
			}
			visited[cur.node] = true

			rec.Record(trace.KindHighlight, fmt.Sprintf("Visiting node %s with distance %g", cur.node, cur.dist), trace.Payload{
				"current_node": cur.node,
				"current_dist": cur.dist,
				"visited":      sortedKeys(visited),
			})

			for _, nb := range g.Neighbors(cur.node) {
				if visited[nb] {
					continue
				}
				w := g[cur.node][nb]
				rec.Record(trace.KindHighlight, fmt.Sprintf("Checking edge %s -> %s (weight %g)", cur.node, nb, w), trace.Payload{
					"current_node":      cur.node,
					"checking_neighbor": nb,
					"edge_weight":       w,
				})

				candidate := cur.dist + w
				if candidate >= dist[nb] {
					continue
				}
				old := dist[nb]
				dist[nb] = candidate
				pred[nb] = cur.node
				heap.Push(pq, distItem{node: nb, dist: candidate})

				rec.Record(trace.KindUpdate,
					fmt.Sprintf("Relaxing edge %s->%s. Updated distance: %g (was %s)", cur.node, nb, candidate, formatDist(old)),
					trace.Payload{
						"node":      nb,
						"new_dist":  candidate,
						"distances": distanceView(nodes, dist),
					})
			}
		}

		reachable := 0
		for _, n := range nodes {
			if !math.IsInf(dist[n], 1) {
				reachable++
			}
		}

		rec.Record(trace.KindSolution, fmt.Sprintf("Shortest paths from %s reach %d of %d node(s)", start, reachable, len(nodes)), trace.Payload{
			"distances":    distanceView(nodes, dist),
			"predecessors": pred,
			"reachable":    reachable,
		})

		return trace.Outcome{
			Value:      float64(reachable),
			Complexity: trace.Complexity{Time: "O(E log V)", Space: "O(V)"},
		}
	})
}

// distanceView renders unreachable distances as null.
func distanceView(nodes []string, dist map[string]float64) map[string]any {
	out := make(map[string]any, len(nodes))
	for _, n := range nodes {
		if math.IsInf(dist[n], 1) {
			out[n] = nil
			continue
		}
		out[n] = dist[n]
	}
	return out
}

func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}
	return fmt.Sprintf("%g", d)
}
