// Package graphviz converts between Graphviz DOT text and model.Graph so the
// graph algorithms can be fed from .dot files and their results drawn.
package graphviz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/awmpietro/algoviz/internal/model"
)

// Parse reads a DOT graph. Edge weights come from the weight attribute, or
// the label when weight is absent, and default to 1. An undirected graph
// yields both directions for every edge. When an edge is repeated the
// lighter weight wins.
func Parse(dot string) (model.Graph, error) {
	ast, err := gographviz.ParseString(dot)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}

	g := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, g); err != nil {
		return nil, fmt.Errorf("failed to analyze DOT: %w", err)
	}

	out := model.Graph{}
	for _, n := range g.Nodes.Nodes {
		out[unquote(n.Name)] = map[string]float64{}
	}

	for _, e := range g.Edges.Edges {
		src, dst := unquote(e.Src), unquote(e.Dst)
		w, err := edgeWeight(e.Attrs)
		if err != nil {
			return nil, fmt.Errorf("invalid weight on edge %s-%s: %w", src, dst, err)
		}

		addEdge(out, src, dst, w)
		if !g.Directed {
			addEdge(out, dst, src, w)
		}
	}

	return out, nil
}

func addEdge(g model.Graph, u, v string, w float64) {
	if g[u] == nil {
		g[u] = map[string]float64{}
	}
	if g[v] == nil {
		g[v] = map[string]float64{}
	}
	if cur, ok := g[u][v]; ok && cur <= w {
		return
	}
	g[u][v] = w
}

func edgeWeight(attrs gographviz.Attrs) (float64, error) {
	raw := getAttr(attrs, "weight")
	if raw == "" {
		raw = getAttr(attrs, "label")
	}
	if raw == "" {
		return 1, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// getAttr reads a Graphviz attribute, which usually arrives quoted.
func getAttr(attrs gographviz.Attrs, key string) string {
	val, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return ""
	}
	return unquote(strings.TrimSpace(val))
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
