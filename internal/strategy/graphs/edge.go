// Package graphs implements the weighted-graph strategies: Dijkstra shortest
// paths and the Prim and Kruskal minimum spanning trees.
//
// Nodes are the union of the adjacency keys and every neighbour they name,
// and all iteration over nodes and neighbours is lexicographic, so a given
// graph always produces the same trace. Prim and Kruskal read the graph as
// undirected, keeping the lighter weight when both directions are present.
package graphs

import "sort"

// Edge is the wire form of an edge inside step payloads.
type Edge struct {
	U      string  `json:"u"`
	V      string  `json:"v"`
	Weight float64 `json:"weight"`
}

func (e Edge) less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if e.U != o.U {
		return e.U < o.U
	}
	return e.V < o.V
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
