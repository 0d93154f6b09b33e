package model

import "sort"

// Nodes returns every node mentioned in g, as a key or as a neighbour, in
// lexicographic order.
func (g Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g))
	for u, nbrs := range g {
		seen[u] = struct{}{}
		for v := range nbrs {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Has reports whether n appears anywhere in g.
func (g Graph) Has(n string) bool {
	if _, ok := g[n]; ok {
		return true
	}
	for _, nbrs := range g {
		if _, ok := nbrs[n]; ok {
			return true
		}
	}
	return false
}

// Neighbors returns the out-neighbours of u in lexicographic order.
func (g Graph) Neighbors(u string) []string {
	nbrs := g[u]
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Undirected returns a symmetric copy of g. When both u→v and v→u exist with
// different weights the lighter one is kept. Self-loops are dropped.
func (g Graph) Undirected() Graph {
	out := make(Graph, len(g))
	for _, n := range g.Nodes() {
		out[n] = map[string]float64{}
	}
	for u, nbrs := range g {
		for v, w := range nbrs {
			if u == v {
				continue
			}
			if cur, ok := out[u][v]; !ok || w < cur {
				out[u][v] = w
				out[v][u] = w
			}
		}
	}
	return out
}

// Plain returns g as nested plain maps, suitable for embedding in a payload.
func (g Graph) Plain() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(g))
	for u, nbrs := range g {
		m := make(map[string]float64, len(nbrs))
		for v, w := range nbrs {
			m[v] = w
		}
		out[u] = m
	}
	return out
}
