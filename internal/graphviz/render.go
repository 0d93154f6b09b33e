package graphviz

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/strategy/graphs"
	"github.com/awmpietro/algoviz/internal/trace"
)

const highlightColor = "red"

// Render writes g as DOT. Undirected output draws each pair once, using the
// lighter weight. Edges in highlight are drawn bold and coloured; for an
// undirected render the orientation of a highlighted edge is ignored.
func Render(g model.Graph, directed bool, highlight []graphs.Edge) (string, error) {
	out := gographviz.NewEscape()
	if err := out.SetName("G"); err != nil {
		return "", err
	}
	if err := out.SetDir(directed); err != nil {
		return "", err
	}

	marked := make(map[[2]string]bool, len(highlight))
	for _, e := range highlight {
		marked[[2]string{e.U, e.V}] = true
		if !directed {
			marked[[2]string{e.V, e.U}] = true
		}
	}

	for _, n := range g.Nodes() {
		if err := out.AddNode("G", n, nil); err != nil {
			return "", fmt.Errorf("add node %q: %w", n, err)
		}
	}

	view := g
	if !directed {
		view = g.Undirected()
	}
	for _, u := range view.Nodes() {
		for _, v := range view.Neighbors(u) {
			if !directed && v < u {
				continue
			}
			attrs := map[string]string{"label": strconv.FormatFloat(view[u][v], 'f', -1, 64)}
			if marked[[2]string{u, v}] {
				attrs["color"] = highlightColor
				attrs["penwidth"] = "2"
			}
			if err := out.AddEdge(u, v, directed, attrs); err != nil {
				return "", fmt.Errorf("add edge %s-%s: %w", u, v, err)
			}
		}
	}

	return out.String(), nil
}

// Highlighted extracts the edges a graph algorithm chose from its final
// step: the MST for Prim and Kruskal, the shortest-path tree for Dijkstra.
func Highlighted(res trace.Result, g model.Graph) []graphs.Edge {
	last, ok := res.Last()
	if !ok || last.Kind != trace.KindSolution {
		return nil
	}

	if mst, ok := last.Payload["mst_edges"].([]graphs.Edge); ok {
		return mst
	}

	pred, ok := last.Payload["predecessors"].(map[string]string)
	if !ok {
		return nil
	}
	out := make([]graphs.Edge, 0, len(pred))
	for _, v := range g.Nodes() {
		u, ok := pred[v]
		if !ok {
			continue
		}
		out = append(out, graphs.Edge{U: u, V: v, Weight: g[u][v]})
	}
	return out
}
