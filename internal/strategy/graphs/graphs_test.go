package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/trace"
)

func sampleGraph() model.Graph {
	return model.Graph{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2, "D": 5},
		"C": {"D": 1},
	}
}

func lastPayload(t *testing.T, r trace.Result) trace.Payload {
	t.Helper()
	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, trace.KindSolution, last.Kind)
	return last.Payload
}

func TestKruskal_SampleGraph(t *testing.T) {
	res := Kruskal(model.GraphInput{Graph: sampleGraph()})

	assert.Equal(t, 4.0, res.ResultValue)
	assert.Empty(t, res.SelectedItems)

	mst, ok := lastPayload(t, res)["mst_edges"].([]Edge)
	require.True(t, ok)
	assert.Len(t, mst, 3)
	assert.Equal(t, []Edge{{"A", "B", 1}, {"C", "D", 1}, {"B", "C", 2}}, mst)

	assert.Len(t, res.OfKind(trace.KindPick), 3)
	assert.Len(t, res.OfKind(trace.KindReject), 2)
	assert.Len(t, res.OfKind(trace.KindHighlight), 5)
}

func TestKruskal_PayloadsAreSnapshots(t *testing.T) {
	res := Kruskal(model.GraphInput{Graph: sampleGraph()})
	picks := res.OfKind(trace.KindPick)
	require.Len(t, picks, 3)
	for i, p := range picks {
		assert.Len(t, p.Payload["mst_edges"], i+1)
	}
}

func TestKruskal_DeduplicatesBothDirections(t *testing.T) {
	res := Kruskal(model.GraphInput{Graph: model.Graph{
		"A": {"B": 3},
		"B": {"A": 2},
	}})
	assert.Equal(t, 2.0, res.ResultValue)
	edges, ok := res.Steps[0].Payload["edges"].([]Edge)
	require.True(t, ok)
	assert.Equal(t, []Edge{{"A", "B", 2}}, edges)
}

func TestKruskal_DisconnectedGraphYieldsForest(t *testing.T) {
	res := Kruskal(model.GraphInput{Graph: model.Graph{
		"A": {"B": 1},
		"C": {"D": 7},
	}})
	assert.Equal(t, 8.0, res.ResultValue)
	assert.Len(t, res.OfKind(trace.KindPick), 2)
}

func TestPrim_AgreesWithKruskal(t *testing.T) {
	graphs := []model.Graph{
		sampleGraph(),
		{
			"a": {"b": 4, "h": 8},
			"b": {"c": 8, "h": 11},
			"c": {"d": 7, "f": 4, "i": 2},
			"d": {"e": 9, "f": 14},
			"e": {"f": 10},
			"f": {"g": 2},
			"g": {"h": 1, "i": 6},
			"h": {"i": 7},
		},
	}
	for _, g := range graphs {
		p := Prim(model.GraphInput{Graph: g})
		k := Kruskal(model.GraphInput{Graph: g})
		assert.Equal(t, k.ResultValue, p.ResultValue)
		assert.Len(t, p.OfKind(trace.KindPick), len(g.Nodes())-1)
	}
}

func TestPrim_SampleGraphFromStart(t *testing.T) {
	res := Prim(model.GraphInput{Graph: sampleGraph(), StartNode: "D"})
	assert.Equal(t, 4.0, res.ResultValue)

	updates := res.OfKind(trace.KindUpdate)
	require.Len(t, updates, 3)
	assert.Equal(t, []string{"C", "D"}, updates[0].Payload["visited"])
	assert.Len(t, updates[0].Payload["mst_edges"], 1)
	assert.Equal(t, []string{"A", "B", "C", "D"}, updates[2].Payload["visited"])
}

func TestPrim_AbsentStartSpansNothing(t *testing.T) {
	res := Prim(model.GraphInput{Graph: sampleGraph(), StartNode: "Z"})
	assert.Equal(t, 0.0, res.ResultValue)
	assert.Empty(t, res.OfKind(trace.KindPick))
}

func TestDijkstra_Distances(t *testing.T) {
	res := Dijkstra(model.GraphInput{Graph: sampleGraph(), StartNode: "A"})
	assert.Equal(t, 4.0, res.ResultValue)

	p := lastPayload(t, res)
	assert.Equal(t, map[string]any{"A": 0.0, "B": 1.0, "C": 3.0, "D": 4.0}, p["distances"])
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, p["predecessors"])
	assert.Equal(t, 4, p["reachable"])
}

func TestDijkstra_UnreachableIsNull(t *testing.T) {
	res := Dijkstra(model.GraphInput{Graph: sampleGraph(), StartNode: "C"})
	assert.Equal(t, 2.0, res.ResultValue)

	init := res.Steps[0]
	require.Equal(t, trace.KindInit, init.Kind)
	dist := init.Payload["distances"].(map[string]any)
	assert.Nil(t, dist["A"])
	assert.Equal(t, 0.0, dist["C"])
}

func TestDijkstra_AbsentStartIsPermissive(t *testing.T) {
	res := Dijkstra(model.GraphInput{Graph: sampleGraph(), StartNode: "Z"})
	assert.Equal(t, 0.0, res.ResultValue)
	assert.Empty(t, res.OfKind(trace.KindUpdate))
	assert.Empty(t, res.OfKind(trace.KindHighlight))
	assert.Len(t, res.Steps, 2)
}

func TestDijkstra_UpdateSnapshotsDoNotAlias(t *testing.T) {
	res := Dijkstra(model.GraphInput{Graph: sampleGraph(), StartNode: "A"})
	updates := res.OfKind(trace.KindUpdate)
	require.NotEmpty(t, updates)

	first := updates[0].Payload["distances"].(map[string]any)
	assert.Equal(t, 1.0, first["B"])
	assert.Nil(t, first["D"])
}

func TestUnionFind(t *testing.T) {
	uf := newUnionFind([]string{"a", "b", "c", "d"})
	assert.True(t, uf.union("a", "b"))
	assert.True(t, uf.union("c", "d"))
	assert.False(t, uf.union("b", "a"))
	assert.True(t, uf.union("a", "d"))
	assert.Equal(t, uf.find("b"), uf.find("c"))
}

func TestStrategies_AreIdempotent(t *testing.T) {
	runs := map[string]func() trace.Result{
		"dijkstra": func() trace.Result { return Dijkstra(model.GraphInput{Graph: sampleGraph(), StartNode: "A"}) },
		"prims":    func() trace.Result { return Prim(model.GraphInput{Graph: sampleGraph(), StartNode: "A"}) },
		"kruskals": func() trace.Result { return Kruskal(model.GraphInput{Graph: sampleGraph()}) },
	}
	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			a, b := run(), run()
			a.Metrics.TimeTaken, b.Metrics.TimeTaken = 0, 0
			assert.Equal(t, a, b)
		})
	}
}
