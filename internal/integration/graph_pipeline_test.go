package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/graphviz"
	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/strategy"
)

func TestGraphviz_Service_Integration(t *testing.T) {
	dot, err := os.ReadFile(filepath.Join("..", "graphviz", "testdata", "sample.dot"))
	if err != nil {
		t.Fatal(err)
	}

	g, err := graphviz.Parse(string(dot))
	if err != nil {
		t.Fatal(err)
	}

	svc := app.NewService()
	in := &model.GraphInput{Graph: g, StartNode: "A"}

	var weights []float64
	for _, f := range []strategy.Family{strategy.Prims, strategy.Kruskals} {
		res, err := svc.Run(context.Background(), strategy.Must(f, strategy.None), in)
		if err != nil {
			t.Fatal(err)
		}
		weights = append(weights, res.ResultValue)

		out, err := graphviz.Render(g, false, graphviz.Highlighted(*res, g))
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(out, "color=red"); got != 3 {
			t.Fatalf("%s: expected 3 highlighted edges, got %d\n%s", f, got, out)
		}
	}

	if weights[0] != 4 || weights[1] != 4 {
		t.Fatalf("expected both MSTs to weigh 4, got %v", weights)
	}
}
