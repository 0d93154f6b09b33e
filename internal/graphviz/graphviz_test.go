package graphviz

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/strategy/graphs"
)

func TestParse_UndirectedFile(t *testing.T) {
	dot, err := os.ReadFile("testdata/sample.dot")
	require.NoError(t, err)

	g, err := Parse(string(dot))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Nodes())
	assert.Equal(t, 1.0, g["A"]["B"])
	assert.Equal(t, 1.0, g["B"]["A"])
	assert.Equal(t, 4.0, g["C"]["A"], "label is used when weight is absent")
	assert.Empty(t, g["E"])
}

func TestParse_DirectedDefaultsAndDuplicates(t *testing.T) {
	g, err := Parse(`digraph { X -> Y; X -> Z [weight=3]; X -> Z [weight=2]; }`)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g["X"]["Y"])
	assert.Equal(t, 2.0, g["X"]["Z"])
	_, back := g["Y"]["X"]
	assert.False(t, back)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(`digraph {`)
	require.Error(t, err)

	_, err = Parse(`digraph { A -> B [weight="heavy"]; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A-B")
}

func TestRender_HighlightsAndRoundTrips(t *testing.T) {
	g := model.Graph{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2},
	}

	dot, err := Render(g, false, []graphs.Edge{{U: "B", V: "A", Weight: 1}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "graph G"), dot)
	assert.Equal(t, 1, strings.Count(dot, "color=red"))

	back, err := Parse(dot)
	require.NoError(t, err)
	assert.Equal(t, g.Undirected(), back)
}

func TestRender_Directed(t *testing.T) {
	g := model.Graph{"A": {"B": 2.5}, "B": {"A": 7}}

	dot, err := Render(g, true, nil)
	require.NoError(t, err)
	assert.Contains(t, dot, "digraph")
	assert.NotContains(t, dot, "color")

	back, err := Parse(dot)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestHighlighted(t *testing.T) {
	g := model.Graph{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2, "D": 5},
		"C": {"D": 1},
	}

	mst := Highlighted(graphs.Kruskal(model.GraphInput{Graph: g}), g)
	assert.Len(t, mst, 3)

	tree := Highlighted(graphs.Dijkstra(model.GraphInput{Graph: g, StartNode: "A"}), g)
	assert.Equal(t, []graphs.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 2},
		{U: "C", V: "D", Weight: 1},
	}, tree)
}
